package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search     string // ILIKE sobre nombre o código de barras
	CategoryID string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	// ListAll devuelve el catálogo completo (snapshot para valorización y búsqueda).
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
