package stockcount

import (
	"context"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que conteo, invalidación del resumen
// y cambio de estado se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		countRepo repository.InventoryCountRepository,
		summaryRepo repository.StocktakeSummaryRepository,
		assignmentRepo repository.BranchAssignmentRepository,
	) error) error
}

// ReportGenerator genera el PDF de un resumen valorizado.
type ReportGenerator interface {
	SummaryPDF(summary *entity.StocktakeSummary) ([]byte, error)
}
