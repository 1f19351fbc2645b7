package stocktake

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// DefaultComparisonMonths meses a mostrar en la comparación mensual del dashboard.
const DefaultComparisonMonths = 6

// Tendencias del delta mes contra mes.
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// MonthTotal valor total de stock de un mes calendario.
type MonthTotal struct {
	Month string // "YYYY-MM"
	Total decimal.Decimal
}

// Delta comparación del mes seleccionado contra el mes anterior con datos.
// ChangePercent es nil cuando no hay mes anterior o su total es cero: nunca se
// divide por cero. Trend queda vacío en ese caso; cero por ciento cuenta como "up".
type Delta struct {
	Month         string
	PreviousMonth string // vacío si no hay mes anterior con datos
	CurrentTotal  decimal.Decimal
	ChangeValue   decimal.Decimal
	ChangePercent *decimal.Decimal
	Trend         string
}

// RankEntry posición de un ejercicio en el ranking de sucursales del mes.
type RankEntry struct {
	AssignmentID     string
	Name             string
	Total            decimal.Decimal
	TotalsByCategory []entity.CategoryTotal
}

// Completion progreso de los ejercicios del mes. La división la hace el caller;
// con Total cero se renderiza "0 / 0" sin error aritmético.
type Completion struct {
	Completed int
	Total     int
}

// summaryMonth trunca el mes del resumen a granularidad "YYYY-MM".
func summaryMonth(s entity.StocktakeSummary) string {
	if len(s.AssignedMonth) > 7 {
		return s.AssignedMonth[:7]
	}
	return s.AssignedMonth
}

// MonthsPresent devuelve los meses con datos, ordenados y sin duplicados.
func MonthsPresent(summaries []entity.StocktakeSummary) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, s := range summaries {
		m := summaryMonth(s)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// monthTotals acumula el gran total por mes.
func monthTotals(summaries []entity.StocktakeSummary) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, s := range summaries {
		m := summaryMonth(s)
		if m == "" {
			continue
		}
		totals[m] = totals[m].Add(s.GrandTotal)
	}
	return totals
}

// MonthlyComparison suma el gran total por mes y devuelve los últimos lastN
// meses con datos en orden cronológico ascendente. Meses sin ejercicios se
// omiten: la salida es tan densa como los datos.
func MonthlyComparison(summaries []entity.StocktakeSummary, lastN int) []MonthTotal {
	if lastN <= 0 {
		lastN = DefaultComparisonMonths
	}
	totals := monthTotals(summaries)
	months := MonthsPresent(summaries)
	if len(months) > lastN {
		months = months[len(months)-lastN:]
	}
	out := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		out = append(out, MonthTotal{Month: m, Total: totals[m]})
	}
	return out
}

// MonthOverMonthDelta compara el mes seleccionado contra el mes inmediatamente
// anterior con datos (no necesariamente el mes calendario adyacente).
func MonthOverMonthDelta(summaries []entity.StocktakeSummary, selectedMonth string) Delta {
	totals := monthTotals(summaries)
	months := MonthsPresent(summaries)

	current := totals[selectedMonth] // cero si el mes no tiene datos

	previousMonth := ""
	idx := sort.SearchStrings(months, selectedMonth)
	if idx < len(months) && months[idx] == selectedMonth && idx > 0 {
		previousMonth = months[idx-1]
	}

	delta := Delta{
		Month:         selectedMonth,
		PreviousMonth: previousMonth,
		CurrentTotal:  current,
		ChangeValue:   current,
	}
	if previousMonth == "" {
		return delta
	}

	previous := totals[previousMonth]
	delta.ChangeValue = current.Sub(previous)
	if previous.IsZero() {
		// Sin base de comparación: el porcentaje queda indefinido, jamás Inf/NaN.
		return delta
	}

	pct := delta.ChangeValue.Div(previous).Mul(decimal.NewFromInt(100))
	delta.ChangePercent = &pct
	if pct.IsNegative() {
		delta.Trend = TrendDown
	} else {
		delta.Trend = TrendUp
	}
	return delta
}

// BranchRank ordena los resúmenes del mes seleccionado por gran total
// descendente; empates por nombre de ejercicio ascendente para mantener un
// orden reproducible. Cada entrada lleva su desglose por categoría.
func BranchRank(summaries []entity.StocktakeSummary, selectedMonth string) []RankEntry {
	var entries []RankEntry
	for _, s := range summaries {
		if summaryMonth(s) != selectedMonth {
			continue
		}
		name := s.AssignmentName
		if name == "" {
			name = s.BranchAssignmentID
		}
		entries = append(entries, RankEntry{
			AssignmentID:     s.BranchAssignmentID,
			Name:             name,
			Total:            s.GrandTotal,
			TotalsByCategory: s.TotalsByCategory,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Total.Equal(entries[j].Total) {
			return entries[i].Total.GreaterThan(entries[j].Total)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// CompletionRatio cuenta los ejercicios del mes y cuántos están terminados.
func CompletionRatio(assignments []entity.BranchAssignment, selectedMonth string) Completion {
	var c Completion
	for _, a := range assignments {
		month := a.AssignedMonth
		if len(month) > 7 {
			month = month[:7]
		}
		if month != selectedMonth {
			continue
		}
		c.Total++
		if a.Status == entity.AssignmentStatusDone {
			c.Completed++
		}
	}
	return c
}
