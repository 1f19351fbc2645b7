package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryCount representa la cantidad contada de un producto dentro de un
// ejercicio de conteo. Una fila por (ProductID, BranchAssignmentID): guardar de
// nuevo sobreescribe la cantidad, nunca agrega filas.
type InventoryCount struct {
	ID                 string
	ProductID          string
	BranchAssignmentID string
	Quantity           decimal.Decimal // validada >= 0 en el punto de entrada
	UpdatedAt          time.Time
}
