package entity

import "time"

// Branch representa una sucursal física donde se cuenta stock.
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
