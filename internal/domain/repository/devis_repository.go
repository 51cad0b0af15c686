package repository

import (
	"context"
	"time"

	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
)

// DevisFiltre regroupe les filtres du listing de devis. DateDebut et DateFin
// vont par paire, bornes incluses ; DateFin désigne une journée entière
// (minuit du dernier jour retenu).
type DevisFiltre struct {
	Recherche string // motif partiel sur la référence
	ClientID  string
	Statut    string
	DateDebut *time.Time
	DateFin   *time.Time
}

// DevisRepository définit le port de persistance des devis.
// GetByIDForUpdate verrouille la ligne jusqu'à la fin de la transaction en
// cours : les séquences « lire, vérifier le statut, écrire » l'utilisent pour
// qu'une écriture concurrente ne puisse pas s'intercaler entre la lecture et
// l'écriture.
type DevisRepository interface {
	Create(ctx context.Context, devis *entity.Devis) error
	GetByID(ctx context.Context, id string) (*entity.Devis, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Devis, error)
	List(ctx context.Context, filtre DevisFiltre, limit, offset int) ([]*entity.DevisAvecClient, int, error)
	Update(ctx context.Context, devis *entity.Devis) error
	Delete(ctx context.Context, id string) error
	CountByClient(ctx context.Context, clientID string) (int, error)
	ResumesByClient(ctx context.Context, clientID string) ([]*entity.DevisResume, error)
}
