package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto contable del inventario.
// Price es nullable: un producto sin precio cargado vale 0 en la valorización,
// nunca bloquea el conteo. Pkg y UomID son metadatos de presentación.
type Product struct {
	ID          string
	Name        string
	Price       *decimal.Decimal // precio unitario, nil si el catálogo aún no lo tiene
	Barcode     string           // código de barras opcional, único cuando existe
	CategoryID  string           // vacío si no tiene categoría
	SupplierID  string
	UomID       string
	Pkg         decimal.Decimal // tamaño de empaque (unidades por bulto)
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
