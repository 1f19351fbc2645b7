package stockcount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

func newResolveFixture() *ResolveProductUseCase {
	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Chicken Breast", Barcode: "7791234567890"},
		&entity.Product{ID: "p2", Name: "Chicken Thigh", Barcode: "7791234567891"},
		&entity.Product{ID: "p3", Name: "Crème Fraîche-Tatua", Barcode: ""},
	)
	return NewResolveProductUseCase(repo)
}

func TestResolve_BarcodeExactoGanaSinCandidatos(t *testing.T) {
	uc := newResolveFixture()

	resp, err := uc.Resolve("7791234567890")
	require.NoError(t, err)
	require.NotNil(t, resp.Match, "un escaneo exacto resuelve a un solo producto")
	assert.Equal(t, "p1", resp.Match.ID)
	assert.Empty(t, resp.Candidates)
}

func TestResolve_SinBarcodeDevuelveCandidatosDifusos(t *testing.T) {
	uc := newResolveFixture()

	resp, err := uc.Resolve("chiken")
	require.NoError(t, err)
	assert.Nil(t, resp.Match)
	require.Len(t, resp.Candidates, 2, "ambos pollos deben aparecer como candidatos")
}

func TestResolve_AcentosNoEstorban(t *testing.T) {
	uc := newResolveFixture()

	resp, err := uc.Resolve("creme fraiche")
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "p3", resp.Candidates[0].ID)
}

func TestResolve_ConsultaVaciaEsInvalida(t *testing.T) {
	uc := newResolveFixture()

	_, err := uc.Resolve("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
