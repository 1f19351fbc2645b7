package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/application/usecase"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/stocktake-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	all, _ := r.ListAll()
	return all, len(all), nil
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildProductApp(repo repository.ProductRepository) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo))
	app.Post("/api/products", handler.Create)
	app.Get("/api/products", handler.List)
	app.Get("/api/products/:id", handler.GetByID)
	app.Put("/api/products/:id", handler.Update)
	app.Delete("/api/products/:id", handler.Delete)
	return app
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_CreateYGet(t *testing.T) {
	app := buildProductApp(newMemProductRepo())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{
		"name":    "Chicken Breast",
		"price":   "8.90",
		"barcode": "9415123400011",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeBody[dto.ProductResponse](t, resp)
	assert.NotEmpty(t, created.ID, "el servidor debe asignar el ID")
	assert.Equal(t, "Chicken Breast", created.Name)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	fetched := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestProductHandler_BarcodeDuplicadoEs409(t *testing.T) {
	app := buildProductApp(newMemProductRepo())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{
		"name": "Uno", "barcode": "111",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{
		"name": "Dos", "barcode": "111",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestProductHandler_SinNombreEs400(t *testing.T) {
	app := buildProductApp(newMemProductRepo())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{
		"barcode": "222",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProductHandler_GetInexistenteEs404(t *testing.T) {
	app := buildProductApp(newMemProductRepo())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_ListEnvuelveDataYPagination(t *testing.T) {
	repo := newMemProductRepo()
	app := buildProductApp(repo)

	for _, name := range []string{"Uno", "Dos", "Tres"} {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{"name": name}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products?page=1&limit=20", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[dto.ProductListResponse](t, resp)
	assert.Len(t, list.Data, 3)
	assert.Equal(t, 3, list.Pagination.Total)
	assert.Equal(t, 1, list.Pagination.TotalPages)
}

func TestProductHandler_Delete(t *testing.T) {
	app := buildProductApp(newMemProductRepo())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/products", fiber.Map{"name": "Efímero"}))
	require.NoError(t, err)
	created := decodeBody[dto.ProductResponse](t, resp)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/products/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
