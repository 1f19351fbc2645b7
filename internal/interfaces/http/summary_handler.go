package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/application/stockcount"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
)

// SummaryHandler maneja resúmenes valorizados: cierre de ejercicios, consulta
// y reporte PDF.
type SummaryHandler struct {
	summaryUC *stockcount.SummaryUseCase
	finishUC  *stockcount.FinishAssignmentUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(summaryUC *stockcount.SummaryUseCase, finishUC *stockcount.FinishAssignmentUseCase) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC, finishUC: finishUC}
}

// List godoc
// @Summary      Listar resúmenes valorizados
// @Tags         stocktake-summaries
// @Produce      json
// @Success      200  {object}  dto.SummaryListResponse
// @Router       /api/stocktake-summaries [get]
func (h *SummaryHandler) List(c *fiber.Ctx) error {
	out, err := h.summaryUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener resumen por ID
// @Tags         stocktake-summaries
// @Produce      json
// @Param        id   path  string  true  "ID del resumen"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocktake-summaries/{id} [get]
func (h *SummaryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.summaryUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resumen no encontrado"})
	}
	return c.JSON(out)
}

// Finish godoc
// @Summary      Cerrar un ejercicio y valorizarlo
// @Description  Drena los conteos pendientes, valoriza contra el catálogo
// @Description  vigente y deja el ejercicio en estado "done". Idempotente.
// @Tags         stocktake-summaries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinishAssignmentRequest  true  "Ejercicio a cerrar"
// @Success      200   {object}  dto.SummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocktake-summaries/finish [post]
func (h *SummaryHandler) Finish(c *fiber.Ctx) error {
	var in dto.FinishAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchAssignmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchAssignmentsId es requerido"})
	}
	out, err := h.finishUC.Finish(c.Context(), in.BranchAssignmentID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ejercicio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar el reporte PDF de un resumen
// @Tags         stocktake-summaries
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del resumen"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocktake-summaries/{id}/pdf [get]
func (h *SummaryHandler) PDF(c *fiber.Ctx) error {
	data, err := h.summaryUC.PDF(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resumen no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stocktake-summary.pdf"`)
	return c.Send(data)
}
