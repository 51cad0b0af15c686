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

// ServiceUseCase cas d'usage du catalogue de prestations.
type ServiceUseCase struct {
	services repository.ServiceRepository
}

// NewServiceUseCase construit le cas d'usage.
func NewServiceUseCase(services repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{services: services}
}

// Create crée une prestation. Titre et prix HT sont requis, le prix ne peut
// pas être négatif.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Titre == "" || in.PrixHT == nil {
		return nil, fmt.Errorf("%w: le titre et le prix HT sont requis", domain.ErrValidation)
	}
	if in.PrixHT.IsNegative() {
		return nil, fmt.Errorf("%w: le prix HT ne peut pas être négatif", domain.ErrValidation)
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		Titre:       in.Titre,
		Description: in.Description,
		PrixHT:      *in.PrixHT,
		Categorie:   in.Categorie,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List recherche dans le catalogue (titre, description) avec filtre de
// catégorie optionnel, trié par titre croissant.
func (uc *ServiceUseCase) List(ctx context.Context, recherche, categorie string, p dto.Pagination) (*dto.ServiceListResponse, error) {
	services, total, err := uc.services.List(ctx, recherche, categorie, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return &dto.ServiceListResponse{Services: out, Pagination: dto.NewPageResponse(total, p)}, nil
}

// Get retourne une prestation par identifiant.
func (uc *ServiceUseCase) Get(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", domain.ErrIntrouvable, id)
	}
	return toServiceResponse(service), nil
}

// Update applique une mise à jour partielle.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", domain.ErrIntrouvable, id)
	}
	if in.Titre != nil {
		if *in.Titre == "" {
			return nil, fmt.Errorf("%w: le titre ne peut pas être vidé", domain.ErrValidation)
		}
		service.Titre = *in.Titre
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.PrixHT != nil {
		if in.PrixHT.IsNegative() {
			return nil, fmt.Errorf("%w: le prix HT ne peut pas être négatif", domain.ErrValidation)
		}
		service.PrixHT = *in.PrixHT
	}
	if in.Categorie != nil {
		service.Categorie = *in.Categorie
	}
	service.UpdatedAt = time.Now()
	if err := uc.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete supprime une prestation. Aucun contrôle référentiel contre les devis
// existants : leurs lignes portent une copie du titre et du prix, la
// suppression du service ne les altère pas.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return fmt.Errorf("%w: service %s", domain.ErrIntrouvable, id)
	}
	return uc.services.Delete(ctx, id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Titre:       s.Titre,
		Description: s.Description,
		PrixHT:      s.PrixHT,
		Categorie:   s.Categorie,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
