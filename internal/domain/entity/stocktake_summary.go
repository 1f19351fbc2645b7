package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedBucket etiqueta del balde para productos sin categoría resoluble.
const UncategorizedBucket = "Uncategorized"

// CategoryTotal valor acumulado de una categoría dentro de un resumen.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"totalValue"`
}

// StocktakeSummary es el resultado valorizado de un ejercicio de conteo.
// Es una función pura de InventoryCount + Product; la fila persistida es solo
// un cache best-effort que se invalida en cada escritura de conteo posterior.
type StocktakeSummary struct {
	ID                 string
	BranchAssignmentID string
	AssignmentName     string
	AssignedMonth      string // "YYYY-MM"
	GrandTotal         decimal.Decimal
	TotalsByCategory   []CategoryTotal // orden: total desc, nombre asc
	UpdatedAt          time.Time
}
