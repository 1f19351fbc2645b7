package entity

import (
	"fmt"
	"time"
)

// Estados de un BranchAssignment.
const (
	AssignmentStatusNotStarted = "not started"
	AssignmentStatusInProgress = "in progress"
	AssignmentStatusDone       = "done"
)

// BranchAssignment representa un ejercicio de conteo: una sucursal en un mes
// calendario. AssignedMonth usa formato "YYYY-MM"; el orden lexicográfico
// coincide con el cronológico.
type BranchAssignment struct {
	ID            string
	BranchID      string
	Name          string // derivado: "{sucursal} - {etiqueta del mes}"
	AssignedMonth string // "2026-02"
	Status        string
	AssignedAt    time.Time
	UpdatedAt     time.Time
}

// ValidStatus verifica que s sea un estado conocido.
func ValidStatus(s string) bool {
	switch s {
	case AssignmentStatusNotStarted, AssignmentStatusInProgress, AssignmentStatusDone:
		return true
	}
	return false
}

// ValidMonth verifica el formato "YYYY-MM".
func ValidMonth(month string) bool {
	_, err := time.Parse("2006-01", month)
	return err == nil
}

// MonthLabel devuelve la etiqueta corta del mes, ej: "Feb 2026".
// Si el valor no parsea, se devuelve tal cual.
func MonthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

// AssignmentName deriva el nombre visible del ejercicio de conteo.
func AssignmentName(branchName, month string) string {
	return fmt.Sprintf("%s - %s", branchName, MonthLabel(month))
}
