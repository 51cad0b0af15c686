package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tlemaire/crm-perso-api/internal/domain"
	"github.com/tlemaire/crm-perso-api/internal/domain/entity"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

var _ repository.DevisRepository = (*DevisRepo)(nil)

// DevisRepo implémentation de DevisRepository (utilisable avec pool ou tx).
// Les lignes et options sont stockées en JSONB dénormalisé sur la ligne du
// devis : elles n'ont ni identité ni cycle de vie propres.
type DevisRepo struct {
	q Querier
}

// NewDevisRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewDevisRepository(q Querier) *DevisRepo {
	return &DevisRepo{q: q}
}

const devisColonnes = `id, reference, client_id, description, items, conditions, date_validite, tva, total_ht, total_ttc, statut, options, created_at, updated_at`

// Create persiste un nouveau devis. La contrainte UNIQUE sur reference
// remonte domain.ErrDuplique (l'appelant réessaie avec un autre suffixe) ;
// la FK client_id remonte domain.ErrIntrouvable si le client a disparu.
func (r *DevisRepo) Create(ctx context.Context, d *entity.Devis) error {
	items, options, err := encodeLignes(d)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO devis (id, reference, client_id, description, items, conditions, date_validite, tva, total_ht, total_ttc, statut, options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(ctx, query,
		d.ID, d.Reference, d.ClientID, d.Description, items, d.Conditions, d.DateValidite,
		d.TVA, d.TotalHT, d.TotalTTC, d.Statut, options, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: référence %s", domain.ErrDuplique, d.Reference)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %s", domain.ErrIntrouvable, d.ClientID)
		}
		return fmt.Errorf("insert devis: %w", err)
	}
	return nil
}

// GetByID retourne un devis complet par ID, (nil, nil) s'il n'existe pas.
func (r *DevisRepo) GetByID(ctx context.Context, id string) (*entity.Devis, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate lit un devis en verrouillant sa ligne (FOR UPDATE). À
// n'appeler que dans une transaction : sous READ COMMITTED, une lecture non
// verrouillée laisserait une écriture concurrente s'intercaler entre le
// contrôle du statut et l'UPDATE.
func (r *DevisRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Devis, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *DevisRepo) getByID(ctx context.Context, id, verrou string) (*entity.Devis, error) {
	row := r.q.QueryRow(ctx, `SELECT `+devisColonnes+` FROM devis WHERE id = $1`+verrou, id)
	d, err := scanDevis(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get devis: %w", err)
	}
	return d, nil
}

// List applique les filtres (référence partielle, client, statut, plage de
// création bornes incluses), joint le résumé client et trie par date de
// création décroissante.
func (r *DevisRepo) List(ctx context.Context, filtre repository.DevisFiltre, limit, offset int) ([]*entity.DevisAvecClient, int, error) {
	where := ``
	args := []any{}
	ajouter := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filtre.Recherche != "" {
		args = append(args, motifILIKE(filtre.Recherche))
		ajouter(fmt.Sprintf("d.reference ILIKE $%d", len(args)))
	}
	if filtre.ClientID != "" {
		args = append(args, filtre.ClientID)
		ajouter(fmt.Sprintf("d.client_id = $%d", len(args)))
	}
	if filtre.Statut != "" {
		args = append(args, filtre.Statut)
		ajouter(fmt.Sprintf("d.statut = $%d", len(args)))
	}
	if filtre.DateDebut != nil && filtre.DateFin != nil {
		args = append(args, *filtre.DateDebut)
		ajouter(fmt.Sprintf("d.created_at >= $%d", len(args)))
		// Borne haute exclusive au lendemain : toute la journée de DateFin
		// est couverte, fractions de seconde incluses.
		args = append(args, borneFinExclusive(*filtre.DateFin))
		ajouter(fmt.Sprintf("d.created_at < $%d", len(args)))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM devis d`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count devis: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.reference, d.client_id, d.description, d.items, d.conditions, d.date_validite,
		       d.tva, d.total_ht, d.total_ttc, d.statut, d.options, d.created_at, d.updated_at,
		       c.nom, c.societe
		FROM devis d
		JOIN clients c ON c.id = d.client_id%s
		ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list devis: %w", err)
	}
	defer rows.Close()

	var list []*entity.DevisAvecClient
	for rows.Next() {
		var ligne entity.DevisAvecClient
		d, err := scanDevis(func(dest ...any) error {
			dest = append(dest, &ligne.ClientNom, &ligne.ClientSociete)
			return rows.Scan(dest...)
		})
		if err != nil {
			return nil, 0, fmt.Errorf("scan devis: %w", err)
		}
		ligne.Devis = *d
		list = append(list, &ligne)
	}
	return list, total, rows.Err()
}

// Update réécrit tous les champs modifiables. La référence et la date de
// création ne changent jamais.
func (r *DevisRepo) Update(ctx context.Context, d *entity.Devis) error {
	items, options, err := encodeLignes(d)
	if err != nil {
		return err
	}
	query := `
		UPDATE devis
		SET description = $2, items = $3, conditions = $4, date_validite = $5,
		    tva = $6, total_ht = $7, total_ttc = $8, statut = $9, options = $10, updated_at = $11
		WHERE id = $1`
	_, err = r.q.Exec(ctx, query,
		d.ID, d.Description, items, d.Conditions, d.DateValidite,
		d.TVA, d.TotalHT, d.TotalTTC, d.Statut, options, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update devis: %w", err)
	}
	return nil
}

// Delete supprime un devis par ID.
func (r *DevisRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM devis WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete devis: %w", err)
	}
	return nil
}

// CountByClient compte les devis référençant un client.
func (r *DevisRepo) CountByClient(ctx context.Context, clientID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM devis WHERE client_id = $1`, clientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count devis client: %w", err)
	}
	return n, nil
}

// ResumesByClient retourne les résumés des devis d'un client, du plus récent
// au plus ancien.
func (r *DevisRepo) ResumesByClient(ctx context.Context, clientID string) ([]*entity.DevisResume, error) {
	query := `
		SELECT id, reference, total_ht, total_ttc, statut, created_at
		FROM devis WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("resumes devis client: %w", err)
	}
	defer rows.Close()

	var list []*entity.DevisResume
	for rows.Next() {
		var res entity.DevisResume
		if err := rows.Scan(&res.ID, &res.Reference, &res.TotalHT, &res.TotalTTC, &res.Statut, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resume devis: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// borneFinExclusive convertit une date de fin inclusive (minuit du dernier
// jour) en borne exclusive : minuit du jour suivant.
func borneFinExclusive(fin time.Time) time.Time {
	return fin.Add(24 * time.Hour)
}

// encodeLignes sérialise items et options en JSONB.
func encodeLignes(d *entity.Devis) (items, options []byte, err error) {
	lignes := d.Items
	if lignes == nil {
		lignes = []entity.LigneDevis{}
	}
	items, err = json.Marshal(lignes)
	if err != nil {
		return nil, nil, fmt.Errorf("encode items: %w", err)
	}
	if d.Options != nil {
		options, err = json.Marshal(d.Options)
		if err != nil {
			return nil, nil, fmt.Errorf("encode options: %w", err)
		}
	}
	return items, options, nil
}

// scanDevis lit les colonnes communes d'un devis depuis scan (QueryRow ou
// rows.Scan) puis décode les colonnes JSONB.
func scanDevis(scan func(dest ...any) error) (*entity.Devis, error) {
	var (
		d       entity.Devis
		items   []byte
		options []byte
	)
	if err := scan(
		&d.ID, &d.Reference, &d.ClientID, &d.Description, &items, &d.Conditions,
		&d.DateValidite, &d.TVA, &d.TotalHT, &d.TotalTTC, &d.Statut, &options,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &d.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &d.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
	}
	return &d, nil
}
