package devis

import (
	"context"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// PDFGenerator rend un devis et son client en document PDF. Fonction pure de
// ses deux entrées : aucun effet de bord au-delà des bytes retournés.
type PDFGenerator interface {
	GenerateDevisPDF(ctx context.Context, d *entity.Devis, client *entity.Client) ([]byte, error)
}

// TxRunner exécute fn dans une transaction unique avec des repositories liés
// à cette transaction (mise à jour et suppression de devis).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clients repository.ClientRepository,
		services repository.ServiceRepository,
		devis repository.DevisRepository,
	) error) error
}
