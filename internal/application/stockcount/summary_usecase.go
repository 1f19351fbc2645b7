package stockcount

import (
	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
	"github.com/tu-usuario/stocktake-pro/internal/domain/repository"
)

// SummaryUseCase consultas sobre resúmenes valorizados persistidos.
type SummaryUseCase struct {
	summaryRepo repository.StocktakeSummaryRepository
	reportGen   ReportGenerator
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(summaryRepo repository.StocktakeSummaryRepository, reportGen ReportGenerator) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo, reportGen: reportGen}
}

// List devuelve todos los resúmenes vigentes.
func (uc *SummaryUseCase) List() (*dto.SummaryListResponse, error) {
	summaries, err := uc.summaryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return &dto.SummaryListResponse{Data: dto.ToSummaryResponses(summaries)}, nil
}

// GetByID devuelve un resumen por ID.
func (uc *SummaryUseCase) GetByID(id string) (*dto.SummaryResponse, error) {
	summary, err := uc.summaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, nil
	}
	resp := dto.ToSummaryResponse(summary)
	return &resp, nil
}

// GetByAssignment devuelve el resumen vigente de un ejercicio, si existe.
func (uc *SummaryUseCase) GetByAssignment(assignmentID string) (*dto.SummaryResponse, error) {
	summary, err := uc.summaryRepo.GetByAssignment(assignmentID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, nil
	}
	resp := dto.ToSummaryResponse(summary)
	return &resp, nil
}

// PDF genera el reporte PDF de un resumen.
func (uc *SummaryUseCase) PDF(id string) ([]byte, error) {
	summary, err := uc.summaryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, domain.ErrNotFound
	}
	return uc.reportGen.SummaryPDF(summary)
}
