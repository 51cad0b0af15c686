package repository

import (
	"context"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

// ClientRepository définit le port de persistance des clients (DIP).
// List retourne la page demandée et le nombre total de résultats.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, recherche string, limit, offset int) ([]*entity.Client, int, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
