package usecase

import (
	"context"

	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// TxRunner exécute fn dans une transaction unique avec des repositories liés
// à cette transaction. Les séquences « lire, vérifier l'invariant, écrire »
// passent par lui pour rester atomiques face aux requêtes concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clients repository.ClientRepository,
		services repository.ServiceRepository,
		devis repository.DevisRepository,
	) error) error
}
