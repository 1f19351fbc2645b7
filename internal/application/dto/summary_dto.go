package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

// FinishAssignmentRequest entrada para cerrar un ejercicio de conteo.
type FinishAssignmentRequest struct {
	BranchAssignmentID string `json:"branchAssignmentsId" validate:"required"`
}

// SummaryResponse salida de un resumen valorizado.
type SummaryResponse struct {
	ID                 string                 `json:"id"`
	BranchAssignmentID string                 `json:"branchAssignmentsId"`
	AssignmentName     string                 `json:"assignmentName"`
	AssignedMonth      string                 `json:"assignedMonth"`
	GrandTotal         decimal.Decimal        `json:"grandTotal"`
	TotalsByCategory   []entity.CategoryTotal `json:"totalsByCategory"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// SummaryListResponse resúmenes de todos los ejercicios.
type SummaryListResponse struct {
	Data []SummaryResponse `json:"data"`
}

func ToSummaryResponse(s *entity.StocktakeSummary) SummaryResponse {
	return SummaryResponse{
		ID:                 s.ID,
		BranchAssignmentID: s.BranchAssignmentID,
		AssignmentName:     s.AssignmentName,
		AssignedMonth:      s.AssignedMonth,
		GrandTotal:         s.GrandTotal,
		TotalsByCategory:   s.TotalsByCategory,
		UpdatedAt:          s.UpdatedAt,
	}
}

func ToSummaryResponses(ss []*entity.StocktakeSummary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, ToSummaryResponse(s))
	}
	return out
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los bloques se calculan sobre los resúmenes persistidos, nunca
// recorriendo conteos fila por fila.
type DashboardSummaryDTO struct {
	Month         string                 `json:"month"`     // mes efectivo mostrado
	MonthLabel    string                 `json:"monthLabel"` // ej: "Feb 2026"
	GrandTotal    decimal.Decimal        `json:"grandTotal"`
	Delta         DashboardDeltaDTO      `json:"delta"`
	Comparison    []MonthTotalDTO        `json:"comparison"` // últimos 6 meses con datos, ascendente
	BranchRanking []BranchRankDTO        `json:"branchRanking"`
	Completion    DashboardCompletionDTO `json:"completion"`
}

// DashboardDeltaDTO variación contra el mes anterior más cercano con datos.
type DashboardDeltaDTO struct {
	PreviousMonth string           `json:"previousMonth,omitempty"`
	ChangeValue   decimal.Decimal  `json:"changeValue"`
	ChangePercent *decimal.Decimal `json:"changePercent"` // nil cuando no hay base comparable
	Trend         string           `json:"trend"`
}

// MonthTotalDTO punto de la serie mensual.
type MonthTotalDTO struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// BranchRankDTO posición de una sucursal en el ranking del mes.
type BranchRankDTO struct {
	BranchAssignmentID string                 `json:"branchAssignmentsId"`
	Name               string                 `json:"name"`
	Total              decimal.Decimal        `json:"total"`
	TotalsByCategory   []entity.CategoryTotal `json:"totalsByCategory"`
}

// DashboardCompletionDTO avance de ejercicios cerrados en el mes.
type DashboardCompletionDTO struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ToMonthTotalDTOs mapea la serie del dominio.
func ToMonthTotalDTOs(ms []stocktake.MonthTotal) []MonthTotalDTO {
	out := make([]MonthTotalDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, MonthTotalDTO{Month: m.Month, Total: m.Total})
	}
	return out
}

// ToBranchRankDTOs mapea el ranking del dominio.
func ToBranchRankDTOs(rs []stocktake.RankEntry) []BranchRankDTO {
	out := make([]BranchRankDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, BranchRankDTO{
			BranchAssignmentID: r.AssignmentID,
			Name:               r.Name,
			Total:              r.Total,
			TotalsByCategory:   r.TotalsByCategory,
		})
	}
	return out
}
