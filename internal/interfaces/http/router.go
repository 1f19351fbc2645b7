package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/analytics"
	"github.com/tu-usuario/stocktake-pro/internal/application/stockcount"
	"github.com/tu-usuario/stocktake-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	SupplierUC   *usecase.SupplierUseCase
	UomUC        *usecase.UomUseCase
	BranchUC     *usecase.BranchUseCase
	AssignmentUC *usecase.AssignmentUseCase
	RecordUC     *stockcount.RecordCountUseCase
	ResolveUC    *stockcount.ResolveProductUseCase
	FinishUC     *stockcount.FinishAssignmentUseCase
	SummaryUC    *stockcount.SummaryUseCase
	DashboardUC  *analytics.DashboardUseCase
	Coalescer    *stockcount.Coalescer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Unidades de medida
	uoms := api.Group("/uom")
	uomHandler := NewUomHandler(deps.UomUC)
	uoms.Post("/", uomHandler.Create)
	uoms.Get("/", uomHandler.List)
	uoms.Get("/:id", uomHandler.GetByID)
	uoms.Put("/:id", uomHandler.Update)
	uoms.Delete("/:id", uomHandler.Delete)

	// Branches
	branches := api.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Ejercicios de conteo (sucursal + mes)
	assignments := api.Group("/branch-assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignments.Put("/:id", assignmentHandler.Update)
	assignments.Put("/:id/status", assignmentHandler.UpdateStatus)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Captura de conteos
	counts := api.Group("/monthly-inventory")
	stockCountHandler := NewStockCountHandler(deps.RecordUC, deps.ResolveUC, deps.Coalescer)
	counts.Post("/", stockCountHandler.Record)
	counts.Get("/", stockCountHandler.ListByAssignment)
	counts.Post("/bulk", stockCountHandler.Bulk)
	counts.Post("/bulk/flush", stockCountHandler.Flush)
	counts.Get("/resolve", stockCountHandler.Resolve)

	// Resúmenes valorizados
	summaries := api.Group("/stocktake-summaries")
	summaryHandler := NewSummaryHandler(deps.SummaryUC, deps.FinishUC)
	summaries.Get("/", summaryHandler.List)
	summaries.Post("/finish", summaryHandler.Finish)
	summaries.Get("/:id", summaryHandler.GetByID)
	summaries.Get("/:id/pdf", summaryHandler.PDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
