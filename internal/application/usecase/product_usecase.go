package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Price es opcional: un
// producto sin precio sigue siendo contable y vale 0 en la valorización.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El barcode, si viene, debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Barcode != "" {
		existing, _ := uc.repo.GetByBarcode(in.Barcode)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Barcode:     in.Barcode,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		UomID:       in.UomID,
		Pkg:         in.Pkg,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update actualiza un producto. Campos nil se dejan como están.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = in.Price
	}
	if in.Barcode != nil && *in.Barcode != product.Barcode {
		if *in.Barcode != "" {
			existing, _ := uc.repo.GetByBarcode(*in.Barcode)
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		product.Barcode = *in.Barcode
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.UomID != nil {
		product.UomID = *in.UomID
	}
	if in.Pkg != nil {
		product.Pkg = *in.Pkg
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// List lista productos con búsqueda opcional y paginación.
func (uc *ProductUseCase) List(filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Data:       dto.ToProductResponses(list),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
