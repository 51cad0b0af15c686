package devis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// Nombre d'insertions tentées avant d'abandonner sur collision de référence.
const maxTentativesReference = 3

// UseCase moteur de devis : création avec enrichissement catalogue et calcul
// des totaux, mise à jour partielle, règles de statut, suppression, listing.
type UseCase struct {
	clients  repository.ClientRepository
	services repository.ServiceRepository
	devis    repository.DevisRepository
	tx       TxRunner
}

// NewUseCase construit le moteur de devis.
func NewUseCase(
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	devis repository.DevisRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{clients: clients, services: services, devis: devis, tx: tx}
}

// Create crée un devis en statut BROUILLON : résolution du client,
// enrichissement des lignes depuis le catalogue, calcul des totaux
// (TVA défaut 20), génération de la référence. L'intégrité de la référence
// au client est garantie par la contrainte FK de la table devis ; une
// collision de référence déclenche un réessai avec un nouveau suffixe.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateDevisRequest) (*dto.DevisResponse, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: clientId est requis", domain.ErrValidation)
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %s", domain.ErrIntrouvable, in.ClientID)
	}

	items, err := uc.enrichirLignes(ctx, uc.services, in.Items)
	if err != nil {
		return nil, err
	}
	tva, err := tvaOuDefaut(in.TVA)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	d := &entity.Devis{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		Description:  in.Description,
		Items:        items,
		Conditions:   in.Conditions,
		DateValidite: in.DateValidite,
		TVA:          tva,
		Statut:       entity.StatutBrouillon,
		Options:      versOptions(in.Options),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	d.CalculerTotaux()

	for tentative := 1; ; tentative++ {
		d.Reference = NouvelleReference(now)
		err = uc.devis.Create(ctx, d)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplique) || tentative == maxTentativesReference {
			return nil, err
		}
	}

	return toDevisResponse(d, resumeComplet(client)), nil
}

// Get retourne un devis avec les coordonnées de son client.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.DevisResponse, error) {
	d, err := uc.devis.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: devis %s", domain.ErrIntrouvable, id)
	}
	client, err := uc.clients.GetByID(ctx, d.ClientID)
	if err != nil {
		return nil, err
	}
	var resume *dto.ClientResumeResponse
	if client != nil {
		resume = resumeComplet(client)
	}
	return toDevisResponse(d, resume), nil
}

// List retourne les devis filtrés (référence partielle, client exact, statut
// exact, plage de dates de création aux deux bornes obligatoires), triés par
// date de création décroissante, avec le résumé client dénormalisé.
func (uc *UseCase) List(ctx context.Context, filtre repository.DevisFiltre, p dto.Pagination) (*dto.DevisListResponse, error) {
	if (filtre.DateDebut == nil) != (filtre.DateFin == nil) {
		return nil, fmt.Errorf("%w: dateDebut et dateFin vont par paire", domain.ErrValidation)
	}
	if filtre.Statut != "" && !entity.StatutValide(filtre.Statut) {
		return nil, fmt.Errorf("%w: statut inconnu %q", domain.ErrValidation, filtre.Statut)
	}
	lignes, total, err := uc.devis.List(ctx, filtre, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DevisResponse, 0, len(lignes))
	for _, l := range lignes {
		d := l.Devis
		out = append(out, toDevisResponse(&d, &dto.ClientResumeResponse{
			Nom:     l.ClientNom,
			Societe: l.ClientSociete,
		}))
	}
	return &dto.DevisListResponse{Devis: out, Pagination: dto.NewPageResponse(total, p)}, nil
}

// Update applique une mise à jour partielle dans une transaction unique. La
// lecture verrouille la ligne : le contrôle du statut et l'écriture sont
// sérialisés face aux mises à jour concurrentes. Un devis FACTURÉ est
// immuable, quel que soit le champ fourni. Si items ou tva change, les lignes
// sont ré-enrichies et les totaux recalculés ; la référence n'est jamais
// touchée.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateDevisRequest) (*dto.DevisResponse, error) {
	var (
		updated *entity.Devis
		resume  *dto.ClientResumeResponse
	)
	err := uc.tx.Run(ctx, func(clients repository.ClientRepository, services repository.ServiceRepository, devis repository.DevisRepository) error {
		d, err := devis.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: devis %s", domain.ErrIntrouvable, id)
		}
		if d.Statut == entity.StatutFacture {
			return fmt.Errorf("%w: devis %s", domain.ErrDevisImmuable, d.Reference)
		}

		if in.Statut != nil {
			if !entity.StatutValide(*in.Statut) {
				return fmt.Errorf("%w: statut inconnu %q", domain.ErrValidation, *in.Statut)
			}
			d.Statut = *in.Statut
		}
		if in.Description != nil {
			d.Description = *in.Description
		}
		if in.Conditions != nil {
			d.Conditions = *in.Conditions
		}
		if in.DateValidite != nil {
			d.DateValidite = in.DateValidite
		}
		if in.Options != nil {
			d.Options = versOptions(in.Options)
		}
		if in.TVA != nil {
			tva, err := tvaOuDefaut(in.TVA)
			if err != nil {
				return err
			}
			d.TVA = tva
		}
		if in.Items != nil {
			items, err := uc.enrichirLignes(ctx, services, in.Items)
			if err != nil {
				return err
			}
			d.Items = items
		}
		if in.Items != nil || in.TVA != nil {
			d.CalculerTotaux()
		}

		d.UpdatedAt = time.Now()
		if err := devis.Update(ctx, d); err != nil {
			return err
		}
		updated = d

		client, err := clients.GetByID(ctx, d.ClientID)
		if err != nil {
			return err
		}
		if client != nil {
			resume = resumeComplet(client)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDevisResponse(updated, resume), nil
}

// Delete supprime un devis. Un devis FACTURÉ ne peut pas être supprimé ; la
// lecture verrouillée empêche un passage concurrent en FACTURÉ entre le
// contrôle et le DELETE.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.ClientRepository, _ repository.ServiceRepository, devis repository.DevisRepository) error {
		d, err := devis.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: devis %s", domain.ErrIntrouvable, id)
		}
		if d.Statut == entity.StatutFacture {
			return fmt.Errorf("%w: le devis %s est facturé", domain.ErrEtatInvalide, d.Reference)
		}
		return devis.Delete(ctx, id)
	})
}

// enrichirLignes valide chaque ligne et copie depuis le catalogue la
// description et le prix manquants quand serviceId est fourni. Les valeurs
// sont figées à l'écriture : un changement ultérieur du catalogue ne modifie
// pas les devis existants.
func (uc *UseCase) enrichirLignes(ctx context.Context, services repository.ServiceRepository, in []dto.LigneDevisRequest) ([]entity.LigneDevis, error) {
	lignes := make([]entity.LigneDevis, 0, len(in))
	for i, item := range in {
		if item.Quantite < 1 {
			return nil, fmt.Errorf("%w: quantité invalide ligne %d", domain.ErrValidation, i+1)
		}
		l := entity.LigneDevis{
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantite:    item.Quantite,
		}
		if item.PrixUnitaireHT != nil {
			if item.PrixUnitaireHT.IsNegative() {
				return nil, fmt.Errorf("%w: prix unitaire négatif ligne %d", domain.ErrValidation, i+1)
			}
			l.PrixUnitaireHT = *item.PrixUnitaireHT
		}
		if item.ServiceID != "" {
			svc, err := services.GetByID(ctx, item.ServiceID)
			if err != nil {
				return nil, err
			}
			if svc == nil {
				return nil, fmt.Errorf("%w: service %s (ligne %d)", domain.ErrIntrouvable, item.ServiceID, i+1)
			}
			if l.Description == "" {
				l.Description = svc.Titre
			}
			if item.PrixUnitaireHT == nil {
				l.PrixUnitaireHT = svc.PrixHT
			}
		} else {
			if l.Description == "" {
				return nil, fmt.Errorf("%w: description requise ligne %d (hors catalogue)", domain.ErrValidation, i+1)
			}
			if item.PrixUnitaireHT == nil {
				return nil, fmt.Errorf("%w: prix unitaire requis ligne %d (hors catalogue)", domain.ErrValidation, i+1)
			}
		}
		lignes = append(lignes, l)
	}
	return lignes, nil
}

func tvaOuDefaut(tva *decimal.Decimal) (decimal.Decimal, error) {
	if tva == nil {
		return entity.TVADefaut, nil
	}
	if tva.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: le taux de TVA ne peut pas être négatif", domain.ErrValidation)
	}
	return *tva, nil
}

func versOptions(in []dto.OptionDevisRequest) []entity.OptionDevis {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.OptionDevis, 0, len(in))
	for _, o := range in {
		out = append(out, entity.OptionDevis{Description: o.Description, Prix: o.Prix})
	}
	return out
}

func resumeComplet(c *entity.Client) *dto.ClientResumeResponse {
	return &dto.ClientResumeResponse{
		Nom:       c.Nom,
		Societe:   c.Societe,
		Adresse:   c.Adresse,
		Telephone: c.Telephone,
		Email:     c.Email,
	}
}

func toDevisResponse(d *entity.Devis, client *dto.ClientResumeResponse) *dto.DevisResponse {
	return &dto.DevisResponse{
		ID:           d.ID,
		Reference:    d.Reference,
		ClientID:     d.ClientID,
		Client:       client,
		Description:  d.Description,
		Items:        d.Items,
		Conditions:   d.Conditions,
		DateValidite: d.DateValidite,
		TVA:          d.TVA,
		TotalHT:      d.TotalHT,
		TotalTTC:     d.TotalTTC,
		Statut:       d.Statut,
		Options:      d.Options,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
