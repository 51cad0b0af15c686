package repository

import (
	"context"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

// UserRepository définit le port de persistance des utilisateurs.
// FindByEmail retourne (nil, nil) si aucun utilisateur ne correspond.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
