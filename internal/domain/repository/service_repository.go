package repository

import (
	"context"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

// ServiceRepository définit le port de persistance du catalogue de services.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context, recherche, categorie string, limit, offset int) ([]*entity.Service, int, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
