package repository

import "github.com/tu-usuario/stocktake-pro/internal/domain/entity"

// StocktakeSummaryRepository define el puerto de persistencia para StocktakeSummary.
// Cada asignación tiene a lo más un resumen vigente; Upsert reemplaza el anterior
// y DeleteByAssignment lo invalida cuando cambian los conteos.
type StocktakeSummaryRepository interface {
	Upsert(summary *entity.StocktakeSummary) error
	GetByID(id string) (*entity.StocktakeSummary, error)
	GetByAssignment(assignmentID string) (*entity.StocktakeSummary, error)
	DeleteByAssignment(assignmentID string) error
	ListAll() ([]*entity.StocktakeSummary, error)
}
