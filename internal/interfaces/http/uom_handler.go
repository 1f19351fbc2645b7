package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktake-pro/internal/application/dto"
	"github.com/tu-usuario/stocktake-pro/internal/application/usecase"
)

// UomHandler maneja las peticiones HTTP para unidades de medida.
type UomHandler struct {
	uc *usecase.UomUseCase
}

// NewUomHandler construye el handler.
func NewUomHandler(uc *usecase.UomUseCase) *UomHandler {
	return &UomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         uom
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUomRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/uom [post]
func (h *UomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad de medida por ID
// @Tags         uom
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.UomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uom/{id} [get]
func (h *UomHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         uom
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200  {object}  dto.UomListResponse
// @Router       /api/uom [get]
func (h *UomHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad de medida
// @Tags         uom
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUomRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UomResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/uom/{id} [put]
func (h *UomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad de medida
// @Tags         uom
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Router       /api/uom/{id} [delete]
func (h *UomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
