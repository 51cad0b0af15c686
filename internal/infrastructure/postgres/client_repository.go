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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation de ClientRepository (utilisable avec pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColonnes = `id, nom, societe, adresse, telephone, email, notes, created_at, updated_at`

// Create persiste un nouveau client.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, nom, societe, adresse, telephone, email, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Nom, client.Societe, client.Adresse, client.Telephone,
		client.Email, client.Notes, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplique
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retourne un client par ID, (nil, nil) s'il n'existe pas.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(ctx, `SELECT `+clientColonnes+` FROM clients WHERE id = $1`, id).Scan(
		&c.ID, &c.Nom, &c.Societe, &c.Adresse, &c.Telephone, &c.Email, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List recherche sur nom/société/email (insensible aux accents), triée par
// nom croissant. Retourne la page et le nombre total de correspondances.
func (r *ClientRepo) List(ctx context.Context, recherche string, limit, offset int) ([]*entity.Client, int, error) {
	where := ``
	args := []any{}
	if recherche != "" {
		where = ` WHERE unaccent(nom) ILIKE $1 OR unaccent(societe) ILIKE $1 OR unaccent(email) ILIKE $1`
		args = append(args, motifILIKE(recherche))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+clientColonnes+` FROM clients%s ORDER BY nom ASC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Nom, &c.Societe, &c.Adresse, &c.Telephone, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update actualise un client.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET nom = $2, societe = $3, adresse = $4, telephone = $5, email = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Nom, client.Societe, client.Adresse, client.Telephone,
		client.Email, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete supprime un client par ID. La FK devis.client_id (ON DELETE
// RESTRICT) bloque la suppression d'un client encore référencé, même face à
// une création de devis concurrente.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: des devis référencent le client %s", domain.ErrConflitReferentiel, id)
		}
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
