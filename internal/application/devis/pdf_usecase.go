package devis

import (
	"context"
	"fmt"

	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// ExportUseCase produit le PDF téléchargeable d'un devis.
type ExportUseCase struct {
	devis     repository.DevisRepository
	clients   repository.ClientRepository
	generator PDFGenerator
}

// NewExportUseCase construit le cas d'usage d'export.
func NewExportUseCase(devis repository.DevisRepository, clients repository.ClientRepository, generator PDFGenerator) *ExportUseCase {
	return &ExportUseCase{devis: devis, clients: clients, generator: generator}
}

// TelechargerPDF charge le devis et son client puis délègue le rendu.
//
// Retourne :
//   - (pdfBytes, nom de fichier, nil) en cas de succès ;
//   - domain.ErrIntrouvable si le devis (ou son client) n'existe pas ;
//   - domain.ErrValidation ou domain.ErrRendu remontés par le générateur.
func (uc *ExportUseCase) TelechargerPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	d, err := uc.devis.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger devis: %w", err)
	}
	if d == nil {
		return nil, "", fmt.Errorf("%w: devis %s", domain.ErrIntrouvable, id)
	}

	client, err := uc.clients.GetByID(ctx, d.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger client: %w", err)
	}
	if client == nil {
		return nil, "", fmt.Errorf("%w: client %s du devis %s", domain.ErrIntrouvable, d.ClientID, d.Reference)
	}

	pdfBytes, err = uc.generator.GenerateDevisPDF(ctx, d, client)
	if err != nil {
		return nil, "", err
	}

	return pdfBytes, fmt.Sprintf("devis-%s.pdf", d.Reference), nil
}
