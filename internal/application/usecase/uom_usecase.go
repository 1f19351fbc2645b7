package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// UomUseCase casos de uso CRUD para unidades de medida.
type UomUseCase struct {
	repo repository.UomRepository
}

// NewUomUseCase construye el caso de uso.
func NewUomUseCase(repo repository.UomRepository) *UomUseCase {
	return &UomUseCase{repo: repo}
}

// Create crea una unidad de medida.
func (uc *UomUseCase) Create(in dto.CreateUomRequest) (*dto.UomResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	uom := &entity.Uom{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(uom); err != nil {
		return nil, err
	}
	resp := dto.ToUomResponse(uom)
	return &resp, nil
}

// GetByID obtiene una unidad de medida por ID.
func (uc *UomUseCase) GetByID(id string) (*dto.UomResponse, error) {
	uom, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if uom == nil {
		return nil, nil
	}
	resp := dto.ToUomResponse(uom)
	return &resp, nil
}

// Update actualiza una unidad de medida.
func (uc *UomUseCase) Update(id string, in dto.UpdateUomRequest) (*dto.UomResponse, error) {
	uom, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if uom == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		uom.Name = *in.Name
	}
	if in.Description != nil {
		uom.Description = *in.Description
	}
	uom.UpdatedAt = time.Now()
	if err := uc.repo.Update(uom); err != nil {
		return nil, err
	}
	resp := dto.ToUomResponse(uom)
	return &resp, nil
}

// List lista unidades de medida con paginación.
func (uc *UomUseCase) List(page dto.PageRequest) (*dto.UomListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.UomListResponse{
		Data:       dto.ToUomResponses(list),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina una unidad de medida por ID.
func (uc *UomUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
