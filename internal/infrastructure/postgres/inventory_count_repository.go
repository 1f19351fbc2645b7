package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación del puerto InventoryCountRepository sobre PostgreSQL.
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository construye el adaptador de persistencia para conteos.
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

// Upsert guarda un conteo. El constraint único (product_id, branch_assignment_id)
// convierte el reconteo en UPDATE: última escritura gana, nunca filas duplicadas.
func (r *InventoryCountRepo) Upsert(count *entity.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts (id, product_id, branch_assignment_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, branch_assignment_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		count.ID, count.ProductID, count.BranchAssignmentID, count.Quantity, count.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory count: %w", err)
	}
	return nil
}

// Get obtiene el conteo de un producto dentro de un ejercicio.
func (r *InventoryCountRepo) Get(productID, assignmentID string) (*entity.InventoryCount, error) {
	query := `
		SELECT id, product_id, branch_assignment_id, quantity, updated_at
		FROM inventory_counts WHERE product_id = $1 AND branch_assignment_id = $2`
	var c entity.InventoryCount
	err := r.q.QueryRow(context.Background(), query, productID, assignmentID).
		Scan(&c.ID, &c.ProductID, &c.BranchAssignmentID, &c.Quantity, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count: %w", err)
	}
	return &c, nil
}

// ListByAssignment devuelve los conteos de un ejercicio.
func (r *InventoryCountRepo) ListByAssignment(assignmentID string) ([]*entity.InventoryCount, error) {
	query := `
		SELECT id, product_id, branch_assignment_id, quantity, updated_at
		FROM inventory_counts WHERE branch_assignment_id = $1`
	rows, err := r.q.Query(context.Background(), query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list counts by assignment: %w", err)
	}
	defer rows.Close()
	return collectCounts(rows)
}

// ListAll devuelve todos los conteos.
func (r *InventoryCountRepo) ListAll() ([]*entity.InventoryCount, error) {
	query := `SELECT id, product_id, branch_assignment_id, quantity, updated_at FROM inventory_counts`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all counts: %w", err)
	}
	defer rows.Close()
	return collectCounts(rows)
}

func collectCounts(rows pgx.Rows) ([]*entity.InventoryCount, error) {
	var out []*entity.InventoryCount
	for rows.Next() {
		var c entity.InventoryCount
		if err := rows.Scan(&c.ID, &c.ProductID, &c.BranchAssignmentID, &c.Quantity, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
