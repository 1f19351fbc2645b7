package stocktake

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// MatchTarget campos de un producto contra los que se evalúa la búsqueda.
type MatchTarget struct {
	Name    string
	Barcode string
}

// minFuzzyQueryLen largo mínimo de la consulta normalizada para habilitar el
// fallback difuso; consultas más cortas generan demasiados falsos positivos.
const minFuzzyQueryLen = 3

// foldAccents descompone (NFD) y elimina las marcas diacríticas, de modo que
// "Crème Fraîche" normaliza igual que "creme fraiche".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeQuery minúsculas, sin acentos y solo [a-z0-9]. Es la forma canónica
// compartida por la búsqueda y la resolución de códigos de barras.
func NormalizeQuery(s string) string {
	lowered := strings.ToLower(s)
	folded, _, err := transform.String(foldAccents, lowered)
	if err != nil {
		folded = lowered
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fuzzyThreshold distancia de edición tolerada según el largo de la consulta:
// 2 errores para consultas largas (> 6), 1 para el resto.
func fuzzyThreshold(queryLen int) int {
	if queryLen > 6 {
		return 2
	}
	return 1
}

// Matches evalúa la consulta contra nombre y código de barras en niveles:
//
//  1. Consulta vacía o solo espacios: siempre coincide (sin filtro).
//  2. Substring crudo case-insensitive sobre nombre o barcode.
//  3. Substring sobre las formas normalizadas (minúsculas, sin acentos ni
//     puntuación): cubre diferencias de espaciado y tildes.
//  4. Fallback difuso por distancia de Levenshtein, solo con consulta
//     normalizada de 3+ caracteres. Para el nombre se acepta además la
//     distancia de prefijo, para que "chiken" encuentre "Chicken Breast".
//
// Función pura: sin estado, sin I/O. Se evalúa por tecla sobre listas cortas.
func Matches(query string, target MatchTarget) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}

	q := strings.ToLower(trimmed)
	name := strings.ToLower(target.Name)
	barcode := strings.ToLower(target.Barcode)
	if strings.Contains(name, q) {
		return true
	}
	if barcode != "" && strings.Contains(barcode, q) {
		return true
	}

	nq := NormalizeQuery(q)
	if nq == "" {
		return true
	}
	nName := NormalizeQuery(name)
	nBarcode := NormalizeQuery(barcode)
	if strings.Contains(nName, nq) {
		return true
	}
	if nBarcode != "" && strings.Contains(nBarcode, nq) {
		return true
	}

	qLen := utf8.RuneCountInString(nq)
	if qLen < minFuzzyQueryLen {
		return false
	}
	max := fuzzyThreshold(qLen)
	if Levenshtein(nq, nName) <= max {
		return true
	}
	if prefixDistance(nq, nName, max) <= max {
		return true
	}
	if nBarcode != "" && Levenshtein(nq, nBarcode) <= max {
		return true
	}
	return false
}

// FindExactBarcode resuelve una consulta contra el catálogo por código de
// barras exacto (sobre formas normalizadas). Los códigos de barras son
// identificadores: jamás se resuelven de forma difusa. Devuelve nil si ningún
// producto tiene ese código.
func FindExactBarcode(query string, products []entity.Product) *entity.Product {
	nq := NormalizeQuery(query)
	if nq == "" {
		return nil
	}
	for i := range products {
		barcode := NormalizeQuery(products[i].Barcode)
		if barcode != "" && barcode == nq {
			return &products[i]
		}
	}
	return nil
}

// Levenshtein distancia de edición clásica por programación dinámica,
// O(m·n) en tiempo y O(n) en espacio (dos filas). Opera sobre runas.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// prefixDistance distancia mínima entre la consulta y un prefijo del objetivo
// de largo cercano al de la consulta (ventana ±max). Permite que un error de
// tipeo al inicio de un nombre largo siga coincidiendo sin abrir la puerta a
// coincidencias sobre el nombre entero.
func prefixDistance(query, target string, max int) int {
	rq := []rune(query)
	rt := []rune(target)
	if len(rt) <= len(rq) {
		return Levenshtein(query, target)
	}
	best := len(rq) + len(rt) // peor caso
	lo := len(rq) - max
	if lo < 0 {
		lo = 0
	}
	hi := len(rq) + max
	if hi > len(rt) {
		hi = len(rt)
	}
	for l := lo; l <= hi; l++ {
		if d := Levenshtein(query, string(rt[:l])); d < best {
			best = d
		}
	}
	return best
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
