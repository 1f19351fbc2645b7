package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(search string, limit, offset int) ([]*entity.Category, int, error)
	ListAll() ([]*entity.Category, error)
	Delete(id string) error
}
