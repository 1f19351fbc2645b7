package stocktake_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

// ──────────────────────────────────────────────────────────────────────────────
// Matches: niveles exacto → normalizado → difuso
// ──────────────────────────────────────────────────────────────────────────────

func TestMatches_ConsultaVaciaSiempreCoincide(t *testing.T) {
	assert.True(t, stocktake.Matches("", stocktake.MatchTarget{Name: "Ribeye Steak"}))
	assert.True(t, stocktake.Matches("   ", stocktake.MatchTarget{Name: "Ribeye Steak"}),
		"solo espacios equivale a sin filtro")
}

func TestMatches_SubstringCaseInsensitive(t *testing.T) {
	assert.True(t, stocktake.Matches("ribeye", stocktake.MatchTarget{Name: "Ribeye Steak"}))
	assert.True(t, stocktake.Matches("STEAK", stocktake.MatchTarget{Name: "Ribeye Steak"}))
	assert.True(t, stocktake.Matches("0123", stocktake.MatchTarget{Name: "Cola", Barcode: "0123456"}),
		"el substring también aplica al código de barras")
}

func TestMatches_NormalizacionAcentosYPuntuacion(t *testing.T) {
	assert.True(t, stocktake.Matches("creme fraiche", stocktake.MatchTarget{Name: "Crème Fraîche-Tatua"}),
		"los acentos y guiones no deben impedir la coincidencia")
	assert.True(t, stocktake.Matches("drygoods", stocktake.MatchTarget{Name: "Dry Goods"}))
}

func TestMatches_DifusoConUmbralPorLargo(t *testing.T) {
	// "chiken" (6 caracteres, umbral 1): un error de tipeo contra el prefijo "chicken".
	assert.True(t, stocktake.Matches("chiken", stocktake.MatchTarget{Name: "Chicken Breast"}))

	// Consulta larga (> 6, umbral 2): dos errores tolerados.
	assert.True(t, stocktake.Matches("chikken brest", stocktake.MatchTarget{Name: "Chicken Breast"}))

	// Demasiado lejos: no coincide.
	assert.False(t, stocktake.Matches("xyz", stocktake.MatchTarget{Name: "Chicken Breast"}))
}

func TestMatches_ConsultaCortaNoActivaDifuso(t *testing.T) {
	// 2 caracteres normalizados: el difuso queda deshabilitado (< 3).
	assert.False(t, stocktake.Matches("rx", stocktake.MatchTarget{Name: "Ribeye"}))
}

func TestMatches_SinCoincidencia(t *testing.T) {
	assert.False(t, stocktake.Matches("salmon", stocktake.MatchTarget{Name: "Ribeye Steak", Barcode: "555"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Levenshtein: vectores conocidos
// ──────────────────────────────────────────────────────────────────────────────

func TestLevenshtein_Vectores(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"chiken", "chicken", 1},
		{"flaw", "lawn", 2},
		{"niño", "nino", 1}, // runas, no bytes
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stocktake.Levenshtein(c.a, c.b),
			"distancia(%q, %q)", c.a, c.b)
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "cremefraichetatua", stocktake.NormalizeQuery("Crème Fraîche-Tatua"))
	assert.Equal(t, "012345", stocktake.NormalizeQuery(" 012-345 "))
	assert.Equal(t, "", stocktake.NormalizeQuery("¡¿---!?"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FindExactBarcode: prioridad absoluta del código de barras
// ──────────────────────────────────────────────────────────────────────────────

func TestFindExactBarcode_ResuelveSinDifuso(t *testing.T) {
	p1 := decimal.NewFromInt(10)
	products := []entity.Product{
		{ID: "p1", Name: "Ribeye", Barcode: "012345", Price: &p1},
		{ID: "p2", Name: "012346 Lookalike"}, // nombre que se parece al código
	}

	found := stocktake.FindExactBarcode("012345", products)

	require.NotNil(t, found)
	assert.Equal(t, "p1", found.ID,
		"el código exacto resuelve inmediato aunque otro nombre se parezca")
}

func TestFindExactBarcode_NormalizaElScan(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Cola", Barcode: "012-345"}}

	found := stocktake.FindExactBarcode(" 012 345 ", products)

	require.NotNil(t, found)
	assert.Equal(t, "p1", found.ID)
}

func TestFindExactBarcode_SinCoincidenciaDevuelveNil(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Cola", Barcode: "012345"}}

	assert.Nil(t, stocktake.FindExactBarcode("999999", products),
		"los códigos de barras jamás se resuelven de forma difusa")
	assert.Nil(t, stocktake.FindExactBarcode("", products))
}
