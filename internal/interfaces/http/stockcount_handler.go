package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/application/stockcount"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
)

// StockCountHandler maneja la captura de conteos: escritura directa, modo bulk
// con coalescencia y resolución de escaneos contra el catálogo.
type StockCountHandler struct {
	recordUC  *stockcount.RecordCountUseCase
	resolveUC *stockcount.ResolveProductUseCase
	coalescer *stockcount.Coalescer
}

// NewStockCountHandler construye el handler.
func NewStockCountHandler(
	recordUC *stockcount.RecordCountUseCase,
	resolveUC *stockcount.ResolveProductUseCase,
	coalescer *stockcount.Coalescer,
) *StockCountHandler {
	return &StockCountHandler{recordUC: recordUC, resolveUC: resolveUC, coalescer: coalescer}
}

func countError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad no puede ser negativa"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ejercicio no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Record godoc
// @Summary      Registrar un conteo (última escritura gana)
// @Tags         monthly-inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordCountRequest  true  "Conteo"
// @Success      200   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/monthly-inventory [post]
func (h *StockCountHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recordUC.Record(c.Context(), in)
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// Bulk godoc
// @Summary      Encolar conteos con coalescencia
// @Description  Cada conteo se valida de inmediato pero se persiste cuando pasa
// @Description  la ventana de silencio; escrituras rápidas sobre el mismo
// @Description  producto colapsan en una sola.
// @Tags         monthly-inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkCountRequest  true  "Lote de conteos"
// @Success      202   {object}  dto.BulkCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/monthly-inventory/bulk [post]
func (h *StockCountHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	for _, count := range in.Counts {
		if err := h.recordUC.Validate(count); err != nil {
			return countError(c, err)
		}
	}
	for _, count := range in.Counts {
		h.coalescer.Queue(stockcount.CountWrite{
			AssignmentID: count.BranchAssignmentID,
			ProductID:    count.ProductID,
			Quantity:     count.Quantity,
		})
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.BulkCountResponse{Queued: len(in.Counts)})
}

// Flush godoc
// @Summary      Persistir de inmediato los conteos encolados
// @Tags         monthly-inventory
// @Produce      json
// @Param        branchAssignmentsId  query  string  false  "Limitar a un ejercicio"
// @Success      204
// @Router       /api/monthly-inventory/bulk/flush [post]
func (h *StockCountHandler) Flush(c *fiber.Ctx) error {
	assignmentID := c.Query("branchAssignmentsId")
	var err error
	if assignmentID != "" {
		err = h.coalescer.FlushAssignment(assignmentID)
	} else {
		err = h.coalescer.FlushAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByAssignment godoc
// @Summary      Listar conteos de un ejercicio
// @Tags         monthly-inventory
// @Produce      json
// @Param        branchAssignmentsId  query  string  true  "ID del ejercicio"
// @Success      200  {object}  dto.CountListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/monthly-inventory [get]
func (h *StockCountHandler) ListByAssignment(c *fiber.Ctx) error {
	assignmentID := c.Query("branchAssignmentsId")
	if assignmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchAssignmentsId es requerido"})
	}
	out, err := h.recordUC.ListByAssignment(assignmentID)
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver un escaneo o texto libre contra el catálogo
// @Description  Un barcode exacto devuelve match único; si no, candidatos por
// @Description  búsqueda tolerante a acentos y errores de tipeo.
// @Tags         monthly-inventory
// @Produce      json
// @Param        q  query  string  true  "Escaneo o texto"
// @Success      200  {object}  dto.ResolveProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/monthly-inventory/resolve [get]
func (h *StockCountHandler) Resolve(c *fiber.Ctx) error {
	query := c.Query("q")
	out, err := h.resolveUC.Resolve(query)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
