package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

var _ repository.UomRepository = (*UomRepo)(nil)

// UomRepo implementación del puerto UomRepository sobre PostgreSQL.
type UomRepo struct {
	q Querier
}

// NewUomRepository construye el adaptador de persistencia para unidades de medida.
func NewUomRepository(q Querier) *UomRepo {
	return &UomRepo{q: q}
}

func scanUom(row pgx.Row) (*entity.Uom, error) {
	var u entity.Uom
	var description *string
	if err := row.Scan(&u.ID, &u.Name, &description, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if description != nil {
		u.Description = *description
	}
	return &u, nil
}

// Create persiste una unidad de medida.
func (r *UomRepo) Create(uom *entity.Uom) error {
	query := `INSERT INTO uoms (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		uom.ID, uom.Name, nullable(uom.Description), uom.CreatedAt, uom.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert uom: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad de medida por ID.
func (r *UomRepo) GetByID(id string) (*entity.Uom, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM uoms WHERE id = $1`
	u, err := scanUom(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uom: %w", err)
	}
	return u, nil
}

// Update actualiza una unidad de medida.
func (r *UomRepo) Update(uom *entity.Uom) error {
	query := `UPDATE uoms SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		uom.ID, uom.Name, nullable(uom.Description), uom.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update uom: %w", err)
	}
	return nil
}

// List lista unidades de medida con paginación.
func (r *UomRepo) List(limit, offset int) ([]*entity.Uom, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM uoms`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count uoms: %w", err)
	}

	query := `SELECT id, name, description, created_at, updated_at FROM uoms ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list uoms: %w", err)
	}
	defer rows.Close()

	var out []*entity.Uom
	for rows.Next() {
		u, err := scanUom(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan uom: %w", err)
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

// Delete elimina una unidad de medida; los productos quedan con uom_id NULL.
func (r *UomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM uoms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete uom: %w", err)
	}
	return nil
}
