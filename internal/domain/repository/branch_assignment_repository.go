package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// BranchAssignmentRepository define el puerto de persistencia para BranchAssignment (DIP).
type BranchAssignmentRepository interface {
	Create(assignment *entity.BranchAssignment) error
	GetByID(id string) (*entity.BranchAssignment, error)
	// GetByBranchAndMonth busca el ejercicio de una sucursal en un mes dado
	// (chequeo de duplicados al crear).
	GetByBranchAndMonth(branchID, month string) (*entity.BranchAssignment, error)
	Update(assignment *entity.BranchAssignment) error
	UpdateStatus(id, status string) error
	List(branchID, status string, limit, offset int) ([]*entity.BranchAssignment, int, error)
	ListAll() ([]*entity.BranchAssignment, error)
	Delete(id string) error
}
