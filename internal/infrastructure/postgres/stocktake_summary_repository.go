package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

var _ repository.StocktakeSummaryRepository = (*StocktakeSummaryRepo)(nil)

// StocktakeSummaryRepo implementación del puerto StocktakeSummaryRepository sobre
// PostgreSQL. El desglose por categoría se guarda como JSONB: es un documento
// que viaja entero, nunca se consulta por dentro.
type StocktakeSummaryRepo struct {
	q Querier
}

// NewStocktakeSummaryRepository construye el adaptador de persistencia para resúmenes.
func NewStocktakeSummaryRepository(q Querier) *StocktakeSummaryRepo {
	return &StocktakeSummaryRepo{q: q}
}

// Upsert guarda el resumen de un ejercicio, reemplazando el anterior si existe.
func (r *StocktakeSummaryRepo) Upsert(summary *entity.StocktakeSummary) error {
	totals, err := json.Marshal(summary.TotalsByCategory)
	if err != nil {
		return fmt.Errorf("marshal totals: %w", err)
	}
	query := `
		INSERT INTO stocktake_summaries (id, branch_assignment_id, assignment_name, assigned_month, grand_total, totals_by_category, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (branch_assignment_id)
		DO UPDATE SET assignment_name = EXCLUDED.assignment_name,
		              assigned_month = EXCLUDED.assigned_month,
		              grand_total = EXCLUDED.grand_total,
		              totals_by_category = EXCLUDED.totals_by_category,
		              updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query,
		summary.ID, summary.BranchAssignmentID, summary.AssignmentName, summary.AssignedMonth,
		summary.GrandTotal, totals, summary.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stocktake summary: %w", err)
	}
	return nil
}

func scanSummary(row pgx.Row) (*entity.StocktakeSummary, error) {
	var s entity.StocktakeSummary
	var totals []byte
	err := row.Scan(&s.ID, &s.BranchAssignmentID, &s.AssignmentName, &s.AssignedMonth,
		&s.GrandTotal, &totals, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		if err := json.Unmarshal(totals, &s.TotalsByCategory); err != nil {
			return nil, fmt.Errorf("unmarshal totals: %w", err)
		}
	}
	return &s, nil
}

const summaryColumns = `id, branch_assignment_id, assignment_name, assigned_month, grand_total, totals_by_category, updated_at`

// GetByID obtiene un resumen por ID.
func (r *StocktakeSummaryRepo) GetByID(id string) (*entity.StocktakeSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM stocktake_summaries WHERE id = $1`
	s, err := scanSummary(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stocktake summary: %w", err)
	}
	return s, nil
}

// GetByAssignment obtiene el resumen vigente de un ejercicio.
func (r *StocktakeSummaryRepo) GetByAssignment(assignmentID string) (*entity.StocktakeSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM stocktake_summaries WHERE branch_assignment_id = $1`
	s, err := scanSummary(r.q.QueryRow(context.Background(), query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary by assignment: %w", err)
	}
	return s, nil
}

// DeleteByAssignment invalida el resumen cacheado de un ejercicio.
func (r *StocktakeSummaryRepo) DeleteByAssignment(assignmentID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stocktake_summaries WHERE branch_assignment_id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("delete summary by assignment: %w", err)
	}
	return nil
}

// ListAll devuelve todos los resúmenes vigentes, más recientes primero.
func (r *StocktakeSummaryRepo) ListAll() ([]*entity.StocktakeSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM stocktake_summaries ORDER BY assigned_month DESC, assignment_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all summaries: %w", err)
	}
	defer rows.Close()

	var out []*entity.StocktakeSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stocktake summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
