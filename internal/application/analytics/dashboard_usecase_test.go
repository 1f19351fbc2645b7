package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

type stubSummaryRepo struct {
	summaries []*entity.StocktakeSummary
}

func (r *stubSummaryRepo) Upsert(*entity.StocktakeSummary) error { return nil }
func (r *stubSummaryRepo) GetByID(string) (*entity.StocktakeSummary, error) {
	return nil, nil
}
func (r *stubSummaryRepo) GetByAssignment(string) (*entity.StocktakeSummary, error) {
	return nil, nil
}
func (r *stubSummaryRepo) DeleteByAssignment(string) error { return nil }
func (r *stubSummaryRepo) ListAll() ([]*entity.StocktakeSummary, error) {
	return r.summaries, nil
}

type stubAssignmentRepo struct {
	assignments []*entity.BranchAssignment
}

func (r *stubAssignmentRepo) Create(*entity.BranchAssignment) error { return nil }
func (r *stubAssignmentRepo) GetByID(string) (*entity.BranchAssignment, error) {
	return nil, nil
}
func (r *stubAssignmentRepo) GetByBranchAndMonth(string, string) (*entity.BranchAssignment, error) {
	return nil, nil
}
func (r *stubAssignmentRepo) Update(*entity.BranchAssignment) error  { return nil }
func (r *stubAssignmentRepo) UpdateStatus(string, string) error      { return nil }
func (r *stubAssignmentRepo) Delete(string) error                    { return nil }
func (r *stubAssignmentRepo) List(string, string, int, int) ([]*entity.BranchAssignment, int, error) {
	return r.assignments, len(r.assignments), nil
}
func (r *stubAssignmentRepo) ListAll() ([]*entity.BranchAssignment, error) {
	return r.assignments, nil
}

func summary(assignmentID, name, month string, total int64) *entity.StocktakeSummary {
	return &entity.StocktakeSummary{
		ID:                 "s-" + assignmentID,
		BranchAssignmentID: assignmentID,
		AssignmentName:     name,
		AssignedMonth:      month,
		GrandTotal:         decimal.NewFromInt(total),
	}
}

func newDashboardFixture() *DashboardUseCase {
	summaries := &stubSummaryRepo{summaries: []*entity.StocktakeSummary{
		summary("a1", "Centro - Ene 2026", "2026-01", 1000),
		summary("a2", "Norte - Ene 2026", "2026-01", 800),
		summary("a3", "Centro - Feb 2026", "2026-02", 1200),
		summary("a4", "Norte - Feb 2026", "2026-02", 900),
	}}
	assignments := &stubAssignmentRepo{assignments: []*entity.BranchAssignment{
		{ID: "a3", AssignedMonth: "2026-02", Status: entity.AssignmentStatusDone},
		{ID: "a4", AssignedMonth: "2026-02", Status: entity.AssignmentStatusInProgress},
	}}
	return NewDashboardUseCase(summaries, assignments)
}

func TestGetSummary_MesExplicito(t *testing.T) {
	uc := newDashboardFixture()

	out, err := uc.GetSummary("2026-02")
	require.NoError(t, err)

	assert.Equal(t, "2026-02", out.Month)
	assert.Equal(t, "Feb 2026", out.MonthLabel)
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(2100)),
		"gran total del mes = suma de los resúmenes del mes")

	// Delta contra enero: 2100 - 1800 = 300, +16.67%, tendencia al alza.
	assert.Equal(t, "2026-01", out.Delta.PreviousMonth)
	assert.True(t, out.Delta.ChangeValue.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, out.Delta.ChangePercent)
	assert.Equal(t, "up", out.Delta.Trend)

	// Ranking: Centro ($1200) antes que Norte ($900).
	require.Len(t, out.BranchRanking, 2)
	assert.Equal(t, "Centro - Feb 2026", out.BranchRanking[0].Name)
	assert.Equal(t, "Norte - Feb 2026", out.BranchRanking[1].Name)

	assert.Equal(t, 1, out.Completion.Completed)
	assert.Equal(t, 2, out.Completion.Total)
}

func TestGetSummary_SinMesCaeAlMasReciente(t *testing.T) {
	uc := newDashboardFixture()

	out, err := uc.GetSummary("")
	require.NoError(t, err)
	assert.Equal(t, "2026-02", out.Month, "sin mes pedido se usa el último con datos")
}

func TestGetSummary_MesSinDatosQuedaEnCero(t *testing.T) {
	uc := newDashboardFixture()

	out, err := uc.GetSummary("2026-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-05", out.Month)
	assert.True(t, out.GrandTotal.IsZero())
	assert.Empty(t, out.BranchRanking)
	assert.Empty(t, out.Delta.PreviousMonth,
		"un mes sin resúmenes no compara contra nada")
}

func TestGetSummary_SerieDeComparacionAscendente(t *testing.T) {
	uc := newDashboardFixture()

	out, err := uc.GetSummary("2026-02")
	require.NoError(t, err)
	require.Len(t, out.Comparison, 2)
	assert.Equal(t, "2026-01", out.Comparison[0].Month)
	assert.Equal(t, "2026-02", out.Comparison[1].Month)
	assert.True(t, out.Comparison[0].Total.Equal(decimal.NewFromInt(1800)))
	assert.True(t, out.Comparison[1].Total.Equal(decimal.NewFromInt(2100)))
}

func TestGetSummary_SinDatosEnAbsoluto(t *testing.T) {
	uc := NewDashboardUseCase(&stubSummaryRepo{}, &stubAssignmentRepo{})

	out, err := uc.GetSummary("")
	require.NoError(t, err)
	assert.Empty(t, out.Month)
	assert.True(t, out.GrandTotal.IsZero())
	assert.Empty(t, out.Comparison)
}
