package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// UomRepository define el puerto de persistencia para Uom (DIP).
type UomRepository interface {
	Create(uom *entity.Uom) error
	GetByID(id string) (*entity.Uom, error)
	Update(uom *entity.Uom) error
	List(limit, offset int) ([]*entity.Uom, int, error)
	Delete(id string) error
}
