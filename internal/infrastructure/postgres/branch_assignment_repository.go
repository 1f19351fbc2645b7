package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

var _ repository.BranchAssignmentRepository = (*BranchAssignmentRepo)(nil)

const assignmentColumns = `id, branch_id, name, assigned_month, status, assigned_at, updated_at`

// BranchAssignmentRepo implementación del puerto BranchAssignmentRepository sobre PostgreSQL.
type BranchAssignmentRepo struct {
	q Querier
}

// NewBranchAssignmentRepository construye el adaptador de persistencia para ejercicios de conteo.
func NewBranchAssignmentRepository(q Querier) *BranchAssignmentRepo {
	return &BranchAssignmentRepo{q: q}
}

func scanAssignment(row pgx.Row) (*entity.BranchAssignment, error) {
	var a entity.BranchAssignment
	err := row.Scan(&a.ID, &a.BranchID, &a.Name, &a.AssignedMonth, &a.Status, &a.AssignedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un ejercicio. La pareja (branch_id, assigned_month) es única.
func (r *BranchAssignmentRepo) Create(assignment *entity.BranchAssignment) error {
	query := `
		INSERT INTO branch_assignments (id, branch_id, name, assigned_month, status, assigned_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.BranchID, assignment.Name, assignment.AssignedMonth,
		assignment.Status, assignment.AssignedAt, assignment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch assignment: %w", err)
	}
	return nil
}

// GetByID obtiene un ejercicio por ID.
func (r *BranchAssignmentRepo) GetByID(id string) (*entity.BranchAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM branch_assignments WHERE id = $1`
	a, err := scanAssignment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch assignment: %w", err)
	}
	return a, nil
}

// GetByBranchAndMonth busca el ejercicio de una sucursal en un mes dado.
func (r *BranchAssignmentRepo) GetByBranchAndMonth(branchID, month string) (*entity.BranchAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM branch_assignments WHERE branch_id = $1 AND assigned_month = $2`
	a, err := scanAssignment(r.q.QueryRow(context.Background(), query, branchID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch assignment by month: %w", err)
	}
	return a, nil
}

// Update actualiza un ejercicio.
func (r *BranchAssignmentRepo) Update(assignment *entity.BranchAssignment) error {
	query := `
		UPDATE branch_assignments
		SET name = $2, assigned_month = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.Name, assignment.AssignedMonth, assignment.Status, assignment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update branch assignment: %w", err)
	}
	return nil
}

// UpdateStatus mueve solo el estado.
func (r *BranchAssignmentRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE branch_assignments SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update assignment status: %w", err)
	}
	return nil
}

// List lista ejercicios con filtros opcionales por sucursal y estado.
func (r *BranchAssignmentRepo) List(branchID, status string, limit, offset int) ([]*entity.BranchAssignment, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if branchID != "" {
		args = append(args, branchID)
		where += fmt.Sprintf(` AND branch_id = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM branch_assignments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count branch assignments: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + assignmentColumns + ` FROM branch_assignments` + where +
		fmt.Sprintf(` ORDER BY assigned_month DESC, name ASC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list branch assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.BranchAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan branch assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

// ListAll devuelve todos los ejercicios (avance de cierre del dashboard).
func (r *BranchAssignmentRepo) ListAll() ([]*entity.BranchAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM branch_assignments ORDER BY assigned_month DESC, name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all branch assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.BranchAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete elimina un ejercicio; conteos y resumen caen en cascada.
func (r *BranchAssignmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM branch_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch assignment: %w", err)
	}
	return nil
}
