package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// AssignmentUseCase casos de uso para ejercicios de conteo (sucursal + mes).
// La unicidad (sucursal, mes) se valida acá al crear; el nombre visible se
// deriva una sola vez y queda congelado aunque la sucursal se renombre después.
type AssignmentUseCase struct {
	repo       repository.BranchAssignmentRepository
	branchRepo repository.BranchRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(repo repository.BranchAssignmentRepository, branchRepo repository.BranchRepository) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo, branchRepo: branchRepo}
}

// Create crea un ejercicio de conteo en estado "not started".
func (uc *AssignmentUseCase) Create(in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if !entity.ValidMonth(in.AssignedMonth) {
		return nil, domain.ErrInvalidMonth
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByBranchAndMonth(in.BranchID, in.AssignedMonth)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	assignment := &entity.BranchAssignment{
		ID:            uuid.New().String(),
		BranchID:      in.BranchID,
		Name:          entity.AssignmentName(branch.Name, in.AssignedMonth),
		AssignedMonth: in.AssignedMonth,
		Status:        entity.AssignmentStatusNotStarted,
		AssignedAt:    now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(assignment); err != nil {
		return nil, err
	}
	resp := dto.ToAssignmentResponse(assignment)
	return &resp, nil
}

// GetByID obtiene un ejercicio por ID.
func (uc *AssignmentUseCase) GetByID(id string) (*dto.AssignmentResponse, error) {
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}
	resp := dto.ToAssignmentResponse(assignment)
	return &resp, nil
}

// Update actualiza mes asignado y/o estado de un ejercicio. Cambiar el mes
// re-valida la unicidad (sucursal, mes) y rederiva el nombre visible.
func (uc *AssignmentUseCase) Update(id string, in dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}
	if in.AssignedMonth != nil && *in.AssignedMonth != assignment.AssignedMonth {
		if !entity.ValidMonth(*in.AssignedMonth) {
			return nil, domain.ErrInvalidMonth
		}
		existing, _ := uc.repo.GetByBranchAndMonth(assignment.BranchID, *in.AssignedMonth)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		assignment.AssignedMonth = *in.AssignedMonth
		if branch, err := uc.branchRepo.GetByID(assignment.BranchID); err == nil && branch != nil {
			assignment.Name = entity.AssignmentName(branch.Name, *in.AssignedMonth)
		}
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		assignment.Status = *in.Status
	}
	assignment.UpdatedAt = time.Now()
	if err := uc.repo.Update(assignment); err != nil {
		return nil, err
	}
	resp := dto.ToAssignmentResponse(assignment)
	return &resp, nil
}

// UpdateStatus mueve el estado del ejercicio. Cualquier transición entre
// estados conocidos es válida; reabrir un ejercicio cerrado está permitido.
func (uc *AssignmentUseCase) UpdateStatus(id string, in dto.UpdateAssignmentStatusRequest) (*dto.AssignmentResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	assignment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	assignment.Status = in.Status
	assignment.UpdatedAt = time.Now()
	resp := dto.ToAssignmentResponse(assignment)
	return &resp, nil
}

// List lista ejercicios con filtros opcionales por sucursal y estado.
func (uc *AssignmentUseCase) List(branchID, status string, page dto.PageRequest) (*dto.AssignmentListResponse, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(branchID, status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.AssignmentListResponse{
		Data:       dto.ToAssignmentResponses(list),
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Delete elimina un ejercicio por ID junto con sus conteos.
func (uc *AssignmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
