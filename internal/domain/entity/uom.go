package entity

import "time"

// Uom representa una unidad de medida (kg, caja, unidad...). No participa en la
// valorización; es metadato de captura.
type Uom struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
