// Package stocktake implementa la lógica pura del conteo mensual: valorización
// de conteos, comparación temporal y el buscador de productos tolerante a errores.
// Todas las funciones operan sobre snapshots inmutables y no tocan I/O.
package stocktake

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
)

// Totals resultado valorizado de un conjunto de conteos de un ejercicio.
type Totals struct {
	GrandTotal       decimal.Decimal
	TotalsByCategory []entity.CategoryTotal
}

// ComputeAssignmentTotals valoriza los conteos de un ejercicio de conteo.
//
// Política de robustez: un reporte de stocktake nunca falla por datos de
// catálogo incompletos. Conteos de productos inexistentes aportan cero y se
// omiten; precio nil vale cero; categoría ausente o no resoluble cae en el
// balde "Uncategorized". La acumulación es en precisión decimal completa,
// el redondeo es responsabilidad de la capa de presentación.
func ComputeAssignmentTotals(
	counts []entity.InventoryCount,
	products []entity.Product,
	categories []entity.Category,
) Totals {
	productByID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	categoryNameByID := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNameByID[c.ID] = c.Name
	}

	grandTotal := decimal.Zero
	byBucket := make(map[string]decimal.Decimal)

	for _, count := range counts {
		product, ok := productByID[count.ProductID]
		if !ok {
			// Referencia huérfana (producto borrado): aporta cero, no rompe el total.
			continue
		}
		price := decimal.Zero
		if product.Price != nil {
			price = *product.Price
		}
		rowValue := count.Quantity.Mul(price)
		grandTotal = grandTotal.Add(rowValue)

		bucket := entity.UncategorizedBucket
		if product.CategoryID != "" {
			if name, ok := categoryNameByID[product.CategoryID]; ok && name != "" {
				bucket = name
			}
		}
		byBucket[bucket] = byBucket[bucket].Add(rowValue)
	}

	totals := make([]entity.CategoryTotal, 0, len(byBucket))
	for category, total := range byBucket {
		totals = append(totals, entity.CategoryTotal{Category: category, Total: total})
	}
	// Orden determinista: total desc, empates por nombre asc.
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return Totals{GrandTotal: grandTotal, TotalsByCategory: totals}
}

// ComputeMultiAssignmentTotals valoriza cada ejercicio del conjunto por separado.
// counts puede mezclar filas de varios ejercicios; se agrupan por
// BranchAssignmentID y solo se computan los ejercicios recibidos.
func ComputeMultiAssignmentTotals(
	assignments []entity.BranchAssignment,
	counts []entity.InventoryCount,
	products []entity.Product,
	categories []entity.Category,
) map[string]Totals {
	countsByAssignment := make(map[string][]entity.InventoryCount)
	for _, c := range counts {
		countsByAssignment[c.BranchAssignmentID] = append(countsByAssignment[c.BranchAssignmentID], c)
	}

	result := make(map[string]Totals, len(assignments))
	for _, a := range assignments {
		result[a.ID] = ComputeAssignmentTotals(countsByAssignment[a.ID], products, categories)
	}
	return result
}
