package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appdevis "github.com/tlemaire/crm-perso-api/internal/application/devis"
	"github.com/tlemaire/crm-perso-api/internal/application/usecase"
	"github.com/tlemaire/crm-perso-api/internal/domain/repository"
)

// TxRunner satisfait les ports transactionnels des deux couches applicatives.
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ appdevis.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL : les
// séquences « lire, vérifier, écrire » des cas d'usage restent atomiques.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repositories liés à la tx
// puis Commit, ou Rollback si fn échoue.
func (r *TxRunner) Run(ctx context.Context, fn func(
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	devis repository.DevisRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClientRepository(tx), NewServiceRepository(tx), NewDevisRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
