package stocktake_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

func summary(assignmentID, name, month string, total float64) entity.StocktakeSummary {
	return entity.StocktakeSummary{
		ID:                 "s-" + assignmentID,
		BranchAssignmentID: assignmentID,
		AssignmentName:     name,
		AssignedMonth:      month,
		GrandTotal:         decimal.NewFromFloat(total),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyComparison
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyComparison_SumaPorMesYUltimosSeis(t *testing.T) {
	var summaries []entity.StocktakeSummary
	months := []string{"2025-06", "2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12", "2026-01"}
	for i, m := range months {
		summaries = append(summaries, summary("a"+m, "Refuel - "+m, m, float64(100*(i+1))))
		summaries = append(summaries, summary("b"+m, "Groove - "+m, m, 50))
	}

	out := stocktake.MonthlyComparison(summaries, 0) // 0 => default 6

	require.Len(t, out, 6, "deben quedar los últimos 6 meses con datos")
	assert.Equal(t, "2025-08", out[0].Month, "orden cronológico ascendente")
	assert.Equal(t, "2026-01", out[5].Month)
	assert.True(t, out[5].Total.Equal(decimal.NewFromInt(850)),
		"el total del mes suma todos sus ejercicios (800 + 50)")
}

func TestMonthlyComparison_MesesSinDatosSeOmiten(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Ene", "2026-01", 100),
		summary("a2", "Refuel - Mar", "2026-03", 300), // febrero no existe
	}

	out := stocktake.MonthlyComparison(summaries, 6)

	require.Len(t, out, 2, "no se rellenan meses vacíos con ceros")
	assert.Equal(t, "2026-01", out[0].Month)
	assert.Equal(t, "2026-03", out[1].Month)
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthOverMonthDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthOverMonthDelta_SignoYPorcentaje(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Ene", "2026-01", 100),
		summary("a2", "Refuel - Feb", "2026-02", 120),
	}

	delta := stocktake.MonthOverMonthDelta(summaries, "2026-02")

	require.NotNil(t, delta.ChangePercent, "con mes anterior no nulo debe haber porcentaje")
	assert.True(t, delta.ChangeValue.Equal(decimal.NewFromInt(20)))
	assert.True(t, delta.ChangePercent.Equal(decimal.NewFromInt(20)),
		"(120-100)/100*100 = 20%%")
	assert.Equal(t, stocktake.TrendUp, delta.Trend)
	assert.Equal(t, "2026-01", delta.PreviousMonth)
}

func TestMonthOverMonthDelta_PrimerMesSinComparacion(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Ene", "2026-01", 100),
	}

	delta := stocktake.MonthOverMonthDelta(summaries, "2026-01")

	assert.Nil(t, delta.ChangePercent, "el mes más antiguo no tiene contra qué comparar")
	assert.Empty(t, delta.Trend)
	assert.Empty(t, delta.PreviousMonth)
}

func TestMonthOverMonthDelta_TotalAnteriorCeroNoDividePorCero(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Ene", "2026-01", 0),
		summary("a2", "Refuel - Feb", "2026-02", 120),
	}

	delta := stocktake.MonthOverMonthDelta(summaries, "2026-02")

	assert.Nil(t, delta.ChangePercent,
		"con total anterior cero el porcentaje queda indefinido, jamás Inf/NaN")
	assert.True(t, delta.ChangeValue.Equal(decimal.NewFromInt(120)))
	assert.Empty(t, delta.Trend)
}

func TestMonthOverMonthDelta_CeroPorCientoCuentaComoUp(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Ene", "2026-01", 100),
		summary("a2", "Refuel - Feb", "2026-02", 100),
	}

	delta := stocktake.MonthOverMonthDelta(summaries, "2026-02")

	require.NotNil(t, delta.ChangePercent)
	assert.True(t, delta.ChangePercent.IsZero())
	assert.Equal(t, stocktake.TrendUp, delta.Trend, "cero es empate deliberado hacia arriba")
}

func TestMonthOverMonthDelta_MesAnteriorEsElMasCercanoConDatos(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Refuel - Nov", "2025-11", 80),
		summary("a2", "Refuel - Feb", "2026-02", 120), // dic y ene sin datos
	}

	delta := stocktake.MonthOverMonthDelta(summaries, "2026-02")

	assert.Equal(t, "2025-11", delta.PreviousMonth,
		"el anterior es el mes más cercano con datos, no el mes calendario adyacente")
	assert.True(t, delta.ChangeValue.Equal(decimal.NewFromInt(40)))
}

// ──────────────────────────────────────────────────────────────────────────────
// BranchRank / CompletionRatio
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchRank_OrdenDescendenteConDesempatePorNombre(t *testing.T) {
	summaries := []entity.StocktakeSummary{
		summary("a1", "Vista - Feb", "2026-02", 180),
		summary("a2", "Refuel - Feb", "2026-02", 340),
		summary("a3", "Groove - Feb", "2026-02", 180),
		summary("a4", "Refuel - Ene", "2026-01", 999), // otro mes, fuera del ranking
	}

	rank := stocktake.BranchRank(summaries, "2026-02")

	require.Len(t, rank, 3)
	assert.Equal(t, "Refuel - Feb", rank[0].Name)
	assert.Equal(t, "Groove - Feb", rank[1].Name, "empate de $180 desempata por nombre")
	assert.Equal(t, "Vista - Feb", rank[2].Name)
}

func TestCompletionRatio_CuentaSinDividir(t *testing.T) {
	assignments := []entity.BranchAssignment{
		{ID: "a1", AssignedMonth: "2026-02", Status: entity.AssignmentStatusDone},
		{ID: "a2", AssignedMonth: "2026-02", Status: entity.AssignmentStatusInProgress},
		{ID: "a3", AssignedMonth: "2026-02", Status: entity.AssignmentStatusDone},
		{ID: "a4", AssignedMonth: "2026-01", Status: entity.AssignmentStatusDone},
	}

	c := stocktake.CompletionRatio(assignments, "2026-02")

	assert.Equal(t, 2, c.Completed)
	assert.Equal(t, 3, c.Total)
}

func TestCompletionRatio_MesVacio(t *testing.T) {
	c := stocktake.CompletionRatio(nil, "2026-02")

	assert.Equal(t, 0, c.Completed)
	assert.Equal(t, 0, c.Total, "con total cero el caller renderiza 0 sin error de división")
}
