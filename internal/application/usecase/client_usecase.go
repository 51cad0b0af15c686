package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tlemaire/crm-perso-api/internal/application/dto"
	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// ClientUseCase cas d'usage du registre clients.
type ClientUseCase struct {
	clients repository.ClientRepository
	devis   repository.DevisRepository
	tx      TxRunner
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(clients repository.ClientRepository, devis repository.DevisRepository, tx TxRunner) *ClientUseCase {
	return &ClientUseCase{clients: clients, devis: devis, tx: tx}
}

// Create crée un client. Le nom est le seul champ obligatoire.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nom == "" {
		return nil, fmt.Errorf("%w: le nom est requis", domain.ErrValidation)
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		Societe:   in.Societe,
		Adresse:   in.Adresse,
		Telephone: in.Telephone,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List recherche les clients (nom, société, email) avec pagination,
// triés par nom croissant.
func (uc *ClientUseCase) List(ctx context.Context, recherche string, p dto.Pagination) (*dto.ClientListResponse, error) {
	clients, total, err := uc.clients.List(ctx, recherche, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return &dto.ClientListResponse{Clients: out, Pagination: dto.NewPageResponse(total, p)}, nil
}

// Get retourne la fiche d'un client avec le résumé de ses devis.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %s", domain.ErrIntrouvable, id)
	}
	resumes, err := uc.devis.ResumesByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toClientResponse(client)
	out.Devis = make([]*dto.DevisResumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out.Devis = append(out.Devis, &dto.DevisResumeResponse{
			ID:        r.ID,
			Reference: r.Reference,
			TotalHT:   r.TotalHT,
			TotalTTC:  r.TotalTTC,
			Statut:    r.Statut,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// Update applique une mise à jour partielle : seuls les champs présents dans
// la requête écrasent la valeur existante.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	var updated *entity.Client
	err := uc.tx.Run(ctx, func(clients repository.ClientRepository, _ repository.ServiceRepository, _ repository.DevisRepository) error {
		client, err := clients.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: client %s", domain.ErrIntrouvable, id)
		}
		if in.Nom != nil {
			if *in.Nom == "" {
				return fmt.Errorf("%w: le nom ne peut pas être vidé", domain.ErrValidation)
			}
			client.Nom = *in.Nom
		}
		if in.Societe != nil {
			client.Societe = *in.Societe
		}
		if in.Adresse != nil {
			client.Adresse = *in.Adresse
		}
		if in.Telephone != nil {
			client.Telephone = *in.Telephone
		}
		if in.Email != nil {
			client.Email = *in.Email
		}
		if in.Notes != nil {
			client.Notes = *in.Notes
		}
		client.UpdatedAt = time.Now()
		if err := clients.Update(ctx, client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(updated), nil
}

// Delete supprime un client. La vérification des devis associés et la
// suppression s'exécutent dans la même transaction : une création de devis
// concurrente ne peut pas laisser une référence orpheline.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(clients repository.ClientRepository, _ repository.ServiceRepository, devis repository.DevisRepository) error {
		client, err := clients.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: client %s", domain.ErrIntrouvable, id)
		}
		n, err := devis.CountByClient(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %d devis associés au client %s", domain.ErrConflitReferentiel, n, id)
		}
		return clients.Delete(ctx, id)
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Nom:       c.Nom,
		Societe:   c.Societe,
		Adresse:   c.Adresse,
		Telephone: c.Telephone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
