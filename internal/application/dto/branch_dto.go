package dto

import (
	"time"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BranchListResponse lista paginada de sucursales.
type BranchListResponse struct {
	Data       []BranchResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

func ToBranchResponse(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToBranchResponses(bs []*entity.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToBranchResponse(b))
	}
	return out
}

// CreateAssignmentRequest entrada para crear un ejercicio de conteo
// (sucursal + mes). El nombre se deriva en el caso de uso.
type CreateAssignmentRequest struct {
	BranchID      string `json:"branchId" validate:"required"`
	AssignedMonth string `json:"assignedMonth" validate:"required"`
}

// UpdateAssignmentRequest entrada para actualizar un ejercicio: mes asignado
// y/o estado. El nombre se rederiva cuando cambia el mes.
type UpdateAssignmentRequest struct {
	AssignedMonth *string `json:"assignedMonth" validate:"omitempty"`
	Status        *string `json:"status" validate:"omitempty"`
}

// UpdateAssignmentStatusRequest entrada para mover el estado de un ejercicio.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignmentResponse salida de un ejercicio de conteo.
type AssignmentResponse struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branchId"`
	Name          string    `json:"name"`
	AssignedMonth string    `json:"assignedMonth"`
	Status        string    `json:"status"`
	AssignedAt    time.Time `json:"assignedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AssignmentListResponse lista paginada de ejercicios de conteo.
type AssignmentListResponse struct {
	Data       []AssignmentResponse `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

func ToAssignmentResponse(a *entity.BranchAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		BranchID:      a.BranchID,
		Name:          a.Name,
		AssignedMonth: a.AssignedMonth,
		Status:        a.Status,
		AssignedAt:    a.AssignedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func ToAssignmentResponses(as []*entity.BranchAssignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, ToAssignmentResponse(a))
	}
	return out
}
