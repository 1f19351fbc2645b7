package dto

import (
	"time"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Category
// ─────────────────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Data       []CategoryResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCategoryResponses(cs []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Supplier
// ─────────────────────────────────────────────────────────────────────────────

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Data       []SupplierResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToSupplierResponses(ss []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, ToSupplierResponse(s))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// UOM
// ─────────────────────────────────────────────────────────────────────────────

// CreateUomRequest entrada para crear una unidad de medida.
type CreateUomRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=60"`
	Description string `json:"description"`
}

// UpdateUomRequest entrada para actualizar una unidad de medida.
type UpdateUomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=60"`
	Description *string `json:"description"`
}

// UomResponse salida de una unidad de medida.
type UomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UomListResponse lista paginada de unidades de medida.
type UomListResponse struct {
	Data       []UomResponse `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

func ToUomResponse(u *entity.Uom) UomResponse {
	return UomResponse{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUomResponses(us []*entity.Uom) []UomResponse {
	out := make([]UomResponse, 0, len(us))
	for _, u := range us {
		out = append(out, ToUomResponse(u))
	}
	return out
}
