package stockcount

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/entity"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// RecordCountUseCase registra conteos de forma transaccional: upsert por
// (producto, ejercicio), invalidación del resumen cacheado y arranque del
// ejercicio en un solo Commit.
type RecordCountUseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	assignmentRepo repository.BranchAssignmentRepository
	countRepo      repository.InventoryCountRepository
}

// NewRecordCountUseCase construye el caso de uso.
func NewRecordCountUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	assignmentRepo repository.BranchAssignmentRepository,
	countRepo repository.InventoryCountRepository,
) *RecordCountUseCase {
	return &RecordCountUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		assignmentRepo: assignmentRepo,
		countRepo:      countRepo,
	}
}

// Validate verifica cantidad, producto y ejercicio sin persistir nada.
// Se usa antes de encolar en el planificador, para rechazar en el request
// lo que fallaría recién en la escritura diferida.
func (uc *RecordCountUseCase) Validate(in dto.RecordCountRequest) error {
	if in.Quantity.LessThan(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	assignment, err := uc.assignmentRepo.GetByID(in.BranchAssignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Record valida y persiste un conteo. Volver a contar el mismo producto
// sobreescribe la cantidad anterior (última escritura gana).
func (uc *RecordCountUseCase) Record(ctx context.Context, in dto.RecordCountRequest) (*dto.CountResponse, error) {
	if err := uc.Validate(in); err != nil {
		return nil, err
	}

	var saved *entity.InventoryCount
	err := uc.txRunner.Run(ctx, func(
		countRepo repository.InventoryCountRepository,
		summaryRepo repository.StocktakeSummaryRepository,
		assignmentRepo repository.BranchAssignmentRepository,
	) error {
		count := &entity.InventoryCount{
			ID:                 uuid.New().String(),
			ProductID:          in.ProductID,
			BranchAssignmentID: in.BranchAssignmentID,
			Quantity:           in.Quantity,
			UpdatedAt:          time.Now(),
		}
		if err := countRepo.Upsert(count); err != nil {
			return err
		}
		// El resumen cacheado quedó obsoleto: se recalcula al cerrar.
		if err := summaryRepo.DeleteByAssignment(in.BranchAssignmentID); err != nil {
			return err
		}
		// El primer conteo arranca el ejercicio.
		assignment, err := assignmentRepo.GetByID(in.BranchAssignmentID)
		if err != nil {
			return err
		}
		if assignment != nil && assignment.Status == entity.AssignmentStatusNotStarted {
			if err := assignmentRepo.UpdateStatus(in.BranchAssignmentID, entity.AssignmentStatusInProgress); err != nil {
				return err
			}
		}
		saved = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToCountResponse(saved)
	return &resp, nil
}

// RecordWrite adapta una escritura del planificador al caso de uso.
func (uc *RecordCountUseCase) RecordWrite(w CountWrite) error {
	_, err := uc.Record(context.Background(), dto.RecordCountRequest{
		BranchAssignmentID: w.AssignmentID,
		ProductID:          w.ProductID,
		Quantity:           w.Quantity,
	})
	return err
}

// ListByAssignment devuelve los conteos persistidos de un ejercicio.
func (uc *RecordCountUseCase) ListByAssignment(assignmentID string) (*dto.CountListResponse, error) {
	assignment, err := uc.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}
	counts, err := uc.countRepo.ListByAssignment(assignmentID)
	if err != nil {
		return nil, err
	}
	return &dto.CountListResponse{Data: dto.ToCountResponses(counts)}, nil
}
