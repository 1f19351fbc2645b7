package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// InventoryCountRepository define el puerto de persistencia para InventoryCount (DIP).
// Upsert por llave natural (productId, branchAssignmentId): guardar de nuevo
// sobreescribe la cantidad, nunca agrega filas.
type InventoryCountRepository interface {
	Upsert(count *entity.InventoryCount) error
	Get(productID, assignmentID string) (*entity.InventoryCount, error)
	ListByAssignment(assignmentID string) ([]*entity.InventoryCount, error)
	ListAll() ([]*entity.InventoryCount, error)
}
