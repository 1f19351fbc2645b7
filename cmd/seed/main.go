// seed aplica el esquema inicial y carga el catálogo base: categorías de
// cocina profesional, unidades de medida, sucursales de ejemplo y algunos
// productos de demostración con código de barras.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el servidor.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/stocktake-pro/pkg/config"
	"github.com/tu-usuario/stocktake-pro/pkg/logger"
)

const schemaPath = "internal/infrastructure/postgres/migrations/001_init.sql"

var categoryNames = []string{
	"Meat", "Poultry", "Seafood", "Dairy", "Dry goods", "Frozen goods",
	"Fresh produce", "Pastry and bakery", "Alcohol", "Cold drinks",
	"Hot drinks", "Confectionery", "Packaging",
}

var uomNames = []string{"Unit", "Kg", "Litre", "Box", "Bag", "Tray"}

var branchNames = []string{"Centro", "Norte", "Aeropuerto"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	now := time.Now()

	categoryRepo := postgres.NewCategoryRepository(pool)
	categoryIDs := make(map[string]string, len(categoryNames))
	for _, name := range categoryNames {
		existing, err := categoryRepo.GetByName(name)
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("consultar categoría")
		}
		if existing != nil {
			categoryIDs[name] = existing.ID
			continue
		}
		c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categoryIDs[name] = c.ID
	}
	log.Info().Int("total", len(categoryNames)).Msg("categorías listas")

	uomRepo := postgres.NewUomRepository(pool)
	uomIDs := make(map[string]string, len(uomNames))
	existingUoms, _, err := uomRepo.List(100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar unidades")
	}
	for _, u := range existingUoms {
		uomIDs[u.Name] = u.ID
	}
	for _, name := range uomNames {
		if _, ok := uomIDs[name]; ok {
			continue
		}
		u := &entity.Uom{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := uomRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("uom", name).Msg("crear unidad")
		}
		uomIDs[name] = u.ID
	}

	branchRepo := postgres.NewBranchRepository(pool)
	existingBranches, err := branchRepo.ListAll()
	if err != nil {
		log.Fatal().Err(err).Msg("listar sucursales")
	}
	branchSeen := make(map[string]bool, len(existingBranches))
	for _, b := range existingBranches {
		branchSeen[b.Name] = true
	}
	for _, name := range branchNames {
		if branchSeen[name] {
			continue
		}
		b := &entity.Branch{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := branchRepo.Create(b); err != nil {
			log.Fatal().Err(err).Str("branch", name).Msg("crear sucursal")
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	demo := []struct {
		name     string
		price    string
		barcode  string
		category string
		uom      string
	}{
		{"Chicken Breast", "8.90", "9415123400011", "Poultry", "Kg"},
		{"Beef Sirloin", "24.50", "9415123400028", "Meat", "Kg"},
		{"Crème Fraîche-Tatua", "6.75", "9415123400035", "Dairy", "Unit"},
		{"Salmon Fillet", "32.00", "9415123400042", "Seafood", "Kg"},
		{"Flour High Grade 20kg", "28.40", "9415123400059", "Dry goods", "Bag"},
		{"Espresso Beans 1kg", "34.90", "9415123400066", "Hot drinks", "Bag"},
	}
	created := 0
	for _, d := range demo {
		existing, err := productRepo.GetByBarcode(d.barcode)
		if err != nil {
			log.Fatal().Err(err).Str("product", d.name).Msg("consultar producto")
		}
		if existing != nil {
			continue
		}
		price, err := decimal.NewFromString(d.price)
		if err != nil {
			log.Fatal().Err(err).Str("product", d.name).Msg("precio inválido")
		}
		p := &entity.Product{
			ID:         uuid.New().String(),
			Name:       d.name,
			Price:      &price,
			Barcode:    d.barcode,
			CategoryID: categoryIDs[d.category],
			UomID:      uomIDs[d.uom],
			Pkg:        decimal.NewFromInt(1),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", d.name).Msg("crear producto")
		}
		created++
	}

	log.Info().Int("products", created).Msg("seed completado")
	fmt.Println("seed OK")
}
