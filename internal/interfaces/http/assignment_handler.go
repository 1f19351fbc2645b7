package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/application/usecase"
	"github.com/tu-usuario/stocktake-pro/internal/domain"
)

// AssignmentHandler maneja las peticiones HTTP para ejercicios de conteo.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ejercicio de conteo (sucursal + mes)
// @Tags         branch-assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "Sucursal y mes"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branch-assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchID == "" || in.AssignedMonth == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId y assignedMonth son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidMonth:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MONTH", Message: "assignedMonth debe tener formato YYYY-MM"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la sucursal ya tiene un ejercicio en ese mes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ejercicio por ID
// @Tags         branch-assignments
// @Produce      json
// @Param        id   path  string  true  "ID del ejercicio"
// @Success      200  {object}  dto.AssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branch-assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ejercicio no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ejercicios de conteo
// @Tags         branch-assignments
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        branchId  query  string  false  "Filtro por sucursal"
// @Param        status    query  string  false  "Filtro por estado"
// @Success      200  {object}  dto.AssignmentListResponse
// @Router       /api/branch-assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(c.Query("branchId"), c.Query("status"), page)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ejercicio (mes y/o estado)
// @Tags         branch-assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ejercicio"
// @Param        body  body  dto.UpdateAssignmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branch-assignments/{id} [put]
func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidMonth:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MONTH", Message: "assignedMonth debe tener formato YYYY-MM"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la sucursal ya tiene un ejercicio en ese mes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ejercicio no encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un ejercicio
// @Tags         branch-assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ejercicio"
// @Param        body  body  dto.UpdateAssignmentStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/branch-assignments/{id}/status [put]
func (h *AssignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ejercicio no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ejercicio
// @Tags         branch-assignments
// @Param        id  path  string  true  "ID del ejercicio"
// @Success      204
// @Router       /api/branch-assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
