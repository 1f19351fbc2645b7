package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/stocktake-pro/internal/application/stockcount"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

var _ stockcount.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Conteo, invalidación del resumen y estado del ejercicio viajan juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	countRepo repository.InventoryCountRepository,
	summaryRepo repository.StocktakeSummaryRepository,
	assignmentRepo repository.BranchAssignmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	countRepo := NewInventoryCountRepository(tx)
	summaryRepo := NewStocktakeSummaryRepository(tx)
	assignmentRepo := NewBranchAssignmentRepository(tx)

	if err := fn(countRepo, summaryRepo, assignmentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
