package stockcount

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
	"github.com/tu-usuario/stocktake-pro/internal/domain/stocktake"
)

// FinishAssignmentUseCase cierra un ejercicio de conteo: drena el planificador,
// valoriza los conteos contra el catálogo vigente y persiste el resumen junto
// con el estado "done" en una sola transacción.
type FinishAssignmentUseCase struct {
	txRunner       TxRunner
	coalescer      *Coalescer
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	assignmentRepo repository.BranchAssignmentRepository
}

// NewFinishAssignmentUseCase construye el caso de uso.
func NewFinishAssignmentUseCase(
	txRunner TxRunner,
	coalescer *Coalescer,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	assignmentRepo repository.BranchAssignmentRepository,
) *FinishAssignmentUseCase {
	return &FinishAssignmentUseCase{
		txRunner:       txRunner,
		coalescer:      coalescer,
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Finish valoriza y cierra el ejercicio. Es idempotente: cerrar dos veces
// recalcula el resumen con los mismos conteos y deja el mismo resultado.
func (uc *FinishAssignmentUseCase) Finish(ctx context.Context, assignmentID string) (*dto.SummaryResponse, error) {
	assignment, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}

	// Nada pendiente puede quedar fuera de la foto que se valoriza.
	if err := uc.coalescer.FlushAssignment(assignmentID); err != nil {
		return nil, err
	}

	productList, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	categoryList, err := uc.categoryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(productList))
	for _, p := range productList {
		products = append(products, *p)
	}
	categories := make([]entity.Category, 0, len(categoryList))
	for _, c := range categoryList {
		categories = append(categories, *c)
	}

	var summary *entity.StocktakeSummary
	err = uc.txRunner.Run(ctx, func(
		countRepo repository.InventoryCountRepository,
		summaryRepo repository.StocktakeSummaryRepository,
		assignmentRepo repository.BranchAssignmentRepository,
	) error {
		countList, err := countRepo.ListByAssignment(assignmentID)
		if err != nil {
			return err
		}
		counts := make([]entity.InventoryCount, 0, len(countList))
		for _, c := range countList {
			counts = append(counts, *c)
		}
		totals := stocktake.ComputeAssignmentTotals(counts, products, categories)
		summary = &entity.StocktakeSummary{
			ID:                 uuid.New().String(),
			BranchAssignmentID: assignment.ID,
			AssignmentName:     assignment.Name,
			AssignedMonth:      assignment.AssignedMonth,
			GrandTotal:         totals.GrandTotal,
			TotalsByCategory:   totals.TotalsByCategory,
			UpdatedAt:          time.Now(),
		}
		if err := summaryRepo.Upsert(summary); err != nil {
			return err
		}
		return assignmentRepo.UpdateStatus(assignmentID, entity.AssignmentStatusDone)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToSummaryResponse(summary)
	return &resp, nil
}
