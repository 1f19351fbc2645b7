package stockcount

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

func testAssignment() *entity.BranchAssignment {
	return &entity.BranchAssignment{
		ID:            "a1",
		BranchID:      "b1",
		Name:          "Centro - Feb 2026",
		AssignedMonth: "2026-02",
		Status:        entity.AssignmentStatusNotStarted,
		AssignedAt:    time.Now(),
	}
}

func testProduct(id, name string) *entity.Product {
	price := decimal.NewFromInt(10)
	return &entity.Product{ID: id, Name: name, Price: &price}
}

func newRecordFixture() (*RecordCountUseCase, *fakeCountRepo, *fakeSummaryRepo, *fakeAssignmentRepo) {
	countRepo := newFakeCountRepo()
	summaryRepo := newFakeSummaryRepo()
	assignmentRepo := newFakeAssignmentRepo(testAssignment())
	productRepo := newFakeProductRepo(testProduct("p1", "Harina"))
	tx := &fakeTxRunner{countRepo: countRepo, summaryRepo: summaryRepo, assignmentRepo: assignmentRepo}
	uc := NewRecordCountUseCase(tx, productRepo, assignmentRepo, countRepo)
	return uc, countRepo, summaryRepo, assignmentRepo
}

func testCountRequest(productID string, qty int64) dto.RecordCountRequest {
	return dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          productID,
		Quantity:           decimal.NewFromInt(qty),
	}
}

func TestRecord_PersisteYArrancaElEjercicio(t *testing.T) {
	uc, countRepo, _, assignmentRepo := newRecordFixture()

	resp, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          "p1",
		Quantity:           decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(3)))

	saved, _ := countRepo.Get("p1", "a1")
	require.NotNil(t, saved)
	assert.True(t, saved.Quantity.Equal(decimal.NewFromInt(3)))

	a, _ := assignmentRepo.GetByID("a1")
	assert.Equal(t, entity.AssignmentStatusInProgress, a.Status,
		"el primer conteo debe mover el ejercicio a 'in progress'")
}

func TestRecord_RecontarSobreescribeSinDuplicar(t *testing.T) {
	uc, countRepo, _, _ := newRecordFixture()

	for _, qty := range []int64{3, 7, 5} {
		_, err := uc.Record(context.Background(), dto.RecordCountRequest{
			BranchAssignmentID: "a1",
			ProductID:          "p1",
			Quantity:           decimal.NewFromInt(qty),
		})
		require.NoError(t, err)
	}

	all, _ := countRepo.ListByAssignment("a1")
	require.Len(t, all, 1, "recontar no debe agregar filas")
	assert.True(t, all[0].Quantity.Equal(decimal.NewFromInt(5)),
		"debe quedar la última cantidad")
}

func TestRecord_InvalidaElResumenCacheado(t *testing.T) {
	uc, _, summaryRepo, _ := newRecordFixture()
	summaryRepo.Upsert(&entity.StocktakeSummary{ID: "s1", BranchAssignmentID: "a1"})

	_, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          "p1",
		Quantity:           decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	stale, _ := summaryRepo.GetByAssignment("a1")
	assert.Nil(t, stale, "un conteo nuevo debe borrar el resumen anterior")
}

func TestRecord_CantidadNegativaSeRechaza(t *testing.T) {
	uc, countRepo, _, _ := newRecordFixture()

	_, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          "p1",
		Quantity:           decimal.NewFromInt(-2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	all, _ := countRepo.ListAll()
	assert.Empty(t, all, "nada debe persistirse en un rechazo")
}

func TestRecord_CantidadCeroEsValida(t *testing.T) {
	uc, countRepo, _, _ := newRecordFixture()

	_, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          "p1",
		Quantity:           decimal.Zero,
	})
	require.NoError(t, err, "cero es un conteo legítimo (estante vacío)")

	saved, _ := countRepo.Get("p1", "a1")
	require.NotNil(t, saved)
	assert.True(t, saved.Quantity.IsZero())
}

func TestRecord_EjercicioOProductoInexistente(t *testing.T) {
	uc, _, _, _ := newRecordFixture()

	_, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "no-existe",
		ProductID:          "p1",
		Quantity:           decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: "a1",
		ProductID:          "no-existe",
		Quantity:           decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByAssignment_EjercicioInexistente(t *testing.T) {
	uc, _, _, _ := newRecordFixture()

	_, err := uc.ListByAssignment("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
