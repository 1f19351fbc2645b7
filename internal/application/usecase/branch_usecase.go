package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	resp := dto.ToBranchResponse(branch)
	return &resp, nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	resp := dto.ToBranchResponse(branch)
	return &resp, nil
}

// Update actualiza una sucursal. El nombre de los ejercicios ya creados no se
// reescribe: quedó congelado al momento de asignar.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		branch.Name = *in.Name
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	resp := dto.ToBranchResponse(branch)
	return &resp, nil
}

// List lista sucursales con paginación.
func (uc *BranchUseCase) List(page dto.PageRequest) (*dto.BranchListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.BranchListResponse{
		Data:       dto.ToBranchResponses(list),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina una sucursal por ID.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
