package stockcount

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

func newFinishFixture() (*FinishAssignmentUseCase, *RecordCountUseCase, *Coalescer, *fakeSummaryRepo, *fakeAssignmentRepo) {
	countRepo := newFakeCountRepo()
	summaryRepo := newFakeSummaryRepo()
	assignmentRepo := newFakeAssignmentRepo(testAssignment())

	p1 := testProduct("p1", "Harina") // $10
	price25 := decimal.RequireFromString("2.5")
	p2 := &entity.Product{ID: "p2", Name: "Azúcar", Price: &price25, CategoryID: "c1"}
	productRepo := newFakeProductRepo(p1, p2)
	categoryRepo := newFakeCategoryRepo(&entity.Category{ID: "c1", Name: "Dry goods"})

	tx := &fakeTxRunner{countRepo: countRepo, summaryRepo: summaryRepo, assignmentRepo: assignmentRepo}
	record := NewRecordCountUseCase(tx, productRepo, assignmentRepo, countRepo)
	coalescer := NewCoalescer(10*time.Second, record.RecordWrite, testLogger())
	finish := NewFinishAssignmentUseCase(tx, coalescer, productRepo, categoryRepo, assignmentRepo)
	return finish, record, coalescer, summaryRepo, assignmentRepo
}

func TestFinish_ValorizaYCierra(t *testing.T) {
	finish, record, _, summaryRepo, assignmentRepo := newFinishFixture()

	ctx := context.Background()
	mustRecord(t, record, "p1", 3)  // 3 × $10.00 = $30.00, sin categoría
	mustRecord(t, record, "p2", 4)  // 4 × $2.50  = $10.00, Dry goods

	resp, err := finish.Finish(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(40)),
		"gran total esperado $40.00, obtuvo %s", resp.GrandTotal)
	require.Len(t, resp.TotalsByCategory, 2)
	assert.Equal(t, entity.UncategorizedBucket, resp.TotalsByCategory[0].Category,
		"el balde de $30 va primero (orden por total descendente)")
	assert.Equal(t, "Dry goods", resp.TotalsByCategory[1].Category)

	persisted, _ := summaryRepo.GetByAssignment("a1")
	require.NotNil(t, persisted, "el resumen debe quedar persistido")

	a, _ := assignmentRepo.GetByID("a1")
	assert.Equal(t, entity.AssignmentStatusDone, a.Status)
}

func TestFinish_DrenaElPlanificadorAntesDeValorizar(t *testing.T) {
	finish, _, coalescer, _, _ := newFinishFixture()

	// La escritura queda en ventana de silencio, aún no persistida.
	coalescer.Queue(CountWrite{AssignmentID: "a1", ProductID: "p1", Quantity: decimal.NewFromInt(2)})

	resp, err := finish.Finish(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(20)),
		"el conteo pendiente debe entrar en la valorización")
	assert.Equal(t, 0, coalescer.Pending())
}

func TestFinish_TodosLosConteosEntranEnLaFoto(t *testing.T) {
	finish, record, _, _, _ := newFinishFixture()

	// Una fila por cada producto del catálogo: ninguna puede perderse al
	// armar la foto que valoriza el cierre.
	mustRecord(t, record, "p1", 1)
	mustRecord(t, record, "p2", 2)

	resp, err := finish.Finish(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, resp.TotalsByCategory, 2, "cada conteo aporta su balde")

	bucketSum := decimal.Zero
	for _, b := range resp.TotalsByCategory {
		bucketSum = bucketSum.Add(b.Total)
	}
	assert.True(t, bucketSum.Equal(resp.GrandTotal),
		"la suma de baldes (%s) debe igualar el gran total (%s)", bucketSum, resp.GrandTotal)
}

func TestFinish_EsIdempotente(t *testing.T) {
	finish, record, _, summaryRepo, _ := newFinishFixture()

	mustRecord(t, record, "p1", 3)

	first, err := finish.Finish(context.Background(), "a1")
	require.NoError(t, err)
	second, err := finish.Finish(context.Background(), "a1")
	require.NoError(t, err)

	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
	all, _ := summaryRepo.ListAll()
	assert.Len(t, all, 1, "cerrar dos veces deja un solo resumen vigente")
}

func TestFinish_EjercicioSinConteos(t *testing.T) {
	finish, _, _, _, _ := newFinishFixture()

	resp, err := finish.Finish(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, resp.GrandTotal.IsZero())
	assert.Empty(t, resp.TotalsByCategory)
}

func TestFinish_EjercicioInexistente(t *testing.T) {
	finish, _, _, _, _ := newFinishFixture()

	_, err := finish.Finish(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func mustRecord(t *testing.T, uc *RecordCountUseCase, productID string, qty int64) {
	t.Helper()
	_, err := uc.Record(context.Background(), testCountRequest(productID, qty))
	require.NoError(t, err)
}
