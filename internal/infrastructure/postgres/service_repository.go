package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implémentation de ServiceRepository (utilisable avec pool ou tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColonnes = `id, titre, description, prix_ht, categorie, created_at, updated_at`

// Create persiste une nouvelle prestation du catalogue.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, titre, description, prix_ht, categorie, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		service.ID, service.Titre, service.Description, service.PrixHT, service.Categorie,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplique
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID retourne une prestation par ID, (nil, nil) si elle n'existe pas.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(ctx, `SELECT `+serviceColonnes+` FROM services WHERE id = $1`, id).Scan(
		&s.ID, &s.Titre, &s.Description, &s.PrixHT, &s.Categorie, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List recherche sur titre/description avec filtre de catégorie optionnel,
// triée par titre croissant.
func (r *ServiceRepo) List(ctx context.Context, recherche, categorie string, limit, offset int) ([]*entity.Service, int, error) {
	where := ``
	args := []any{}
	ajouter := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if recherche != "" {
		args = append(args, motifILIKE(recherche))
		ajouter(fmt.Sprintf("(unaccent(titre) ILIKE $%d OR unaccent(description) ILIKE $%d)", len(args), len(args)))
	}
	if categorie != "" {
		args = append(args, categorie)
		ajouter(fmt.Sprintf("categorie = $%d", len(args)))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM services`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+serviceColonnes+` FROM services%s ORDER BY titre ASC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Titre, &s.Description, &s.PrixHT, &s.Categorie, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// Update actualise une prestation.
func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services SET titre = $2, description = $3, prix_ht = $4, categorie = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		service.ID, service.Titre, service.Description, service.PrixHT, service.Categorie, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete supprime une prestation par ID.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
