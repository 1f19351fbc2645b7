package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Barcode     string           `json:"barcode"`
	CategoryID  string           `json:"categoryId"`
	SupplierID  string           `json:"supplierId"`
	UomID       string           `json:"uomId"`
	Pkg         decimal.Decimal  `json:"pkg"`
	Description string           `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Barcode     *string          `json:"barcode"`
	CategoryID  *string          `json:"categoryId"`
	SupplierID  *string          `json:"supplierId"`
	UomID       *string          `json:"uomId"`
	Pkg         *decimal.Decimal `json:"pkg"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Barcode     string           `json:"barcode,omitempty"`
	CategoryID  string           `json:"categoryId,omitempty"`
	SupplierID  string           `json:"supplierId,omitempty"`
	UomID       string           `json:"uomId,omitempty"`
	Pkg         decimal.Decimal  `json:"pkg"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ToProductResponse mapea la entidad de dominio a su DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Barcode:     p.Barcode,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		UomID:       p.UomID,
		Pkg:         p.Pkg,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses mapea un slice de entidades.
func ToProductResponses(ps []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToProductResponse(p))
	}
	return out
}
