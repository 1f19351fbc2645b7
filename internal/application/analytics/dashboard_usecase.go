// Package analytics contiene los casos de uso del dashboard de valorización.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

// DashboardUseCase arma el resumen ejecutivo de un mes: gran total, variación
// contra el mes anterior, serie de los últimos meses, ranking de sucursales y
// avance de cierre. Todo sale de los resúmenes persistidos; nunca recorre
// conteos fila por fila.
type DashboardUseCase struct {
	summaryRepo    repository.StocktakeSummaryRepository
	assignmentRepo repository.BranchAssignmentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	summaryRepo repository.StocktakeSummaryRepository,
	assignmentRepo repository.BranchAssignmentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{summaryRepo: summaryRepo, assignmentRepo: assignmentRepo}
}

// GetSummary construye el DashboardSummaryDTO para el mes pedido. Si month
// viene vacío, cae al mes más reciente con resúmenes; un mes pedido
// explícitamente se respeta aunque no tenga datos (se renderiza en cero).
//
// Dos consultas en paralelo:
//  1. ListAll resúmenes  → total, delta, serie, ranking
//  2. ListAll ejercicios → avance de cierre
func (uc *DashboardUseCase) GetSummary(month string) (*dto.DashboardSummaryDTO, error) {
	type summariesResult struct {
		summaries []*entity.StocktakeSummary
		err       error
	}
	type assignmentsResult struct {
		assignments []*entity.BranchAssignment
		err         error
	}

	summariesCh := make(chan summariesResult, 1)
	assignmentsCh := make(chan assignmentsResult, 1)

	go func() {
		ss, err := uc.summaryRepo.ListAll()
		summariesCh <- summariesResult{ss, err}
	}()
	go func() {
		as, err := uc.assignmentRepo.ListAll()
		assignmentsCh <- assignmentsResult{as, err}
	}()

	sres := <-summariesCh
	ares := <-assignmentsCh

	if sres.err != nil {
		return nil, fmt.Errorf("dashboard: resúmenes: %w", sres.err)
	}
	if ares.err != nil {
		return nil, fmt.Errorf("dashboard: ejercicios: %w", ares.err)
	}

	summaries := make([]entity.StocktakeSummary, 0, len(sres.summaries))
	for _, s := range sres.summaries {
		summaries = append(summaries, *s)
	}
	assignments := make([]entity.BranchAssignment, 0, len(ares.assignments))
	for _, a := range ares.assignments {
		assignments = append(assignments, *a)
	}

	month = effectiveMonth(month, summaries)

	delta := stocktake.MonthOverMonthDelta(summaries, month)
	comparison := stocktake.MonthlyComparison(summaries, stocktake.DefaultComparisonMonths)
	ranking := stocktake.BranchRank(summaries, month)
	completion := stocktake.CompletionRatio(assignments, month)

	grandTotal := decimal.Zero
	for _, r := range ranking {
		grandTotal = grandTotal.Add(r.Total)
	}

	return &dto.DashboardSummaryDTO{
		Month:      month,
		MonthLabel: entity.MonthLabel(month),
		GrandTotal: grandTotal,
		Delta: dto.DashboardDeltaDTO{
			PreviousMonth: delta.PreviousMonth,
			ChangeValue:   delta.ChangeValue,
			ChangePercent: delta.ChangePercent,
			Trend:         delta.Trend,
		},
		Comparison:    dto.ToMonthTotalDTOs(comparison),
		BranchRanking: dto.ToBranchRankDTOs(ranking),
		Completion: dto.DashboardCompletionDTO{
			Completed: completion.Completed,
			Total:     completion.Total,
		},
	}, nil
}

// effectiveMonth resuelve el mes a mostrar: el pedido si tiene datos, y si no,
// el más reciente con resúmenes. Con un mes pedido sin datos el dashboard
// muestra ese mes en cero en lugar de inventar otro.
func effectiveMonth(requested string, summaries []entity.StocktakeSummary) string {
	months := stocktake.MonthsPresent(summaries)
	if requested != "" {
		return requested
	}
	if len(months) == 0 {
		return ""
	}
	return months[len(months)-1]
}
