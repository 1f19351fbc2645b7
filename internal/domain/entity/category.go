package entity

import "time"

// Category representa una categoría de productos, usada como llave de agrupación
// en los desgloses de valorización.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
