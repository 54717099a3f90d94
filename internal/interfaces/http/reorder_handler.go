package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/requests"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
)

// ReorderHandler maneja las solicitudes de reposición de producto.
type ReorderHandler struct {
	uc *requests.ReorderUseCase
}

// NewReorderHandler construye el handler de reposiciones.
func NewReorderHandler(uc *requests.ReorderUseCase) *ReorderHandler {
	return &ReorderHandler{uc: uc}
}

// Submit godoc
// @Summary      Solicitar reposición de producto
// @Description  Las reposiciones con prioridad High escalan por SMS al dueño.
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReorderRequest  true  "producto, cantidad, prioridad"
// @Success      201   {object}  dto.ReorderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requests/reorder [post]
func (h *ReorderHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto y cantidad positiva son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Advance godoc
// @Summary      Mover el estado de una reposición
// @Description  Acepta cualquier transición entre Pending, Ordered y Restocked,
//               incluso hacia atrás (corrige errores de captura).
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la reposición"
// @Param        body  body  dto.AdvanceReorderRequest  true  "Pending | Ordered | Restocked"
// @Success      200   {object}  dto.ReorderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/requests/reorder/{id}/status [patch]
func (h *ReorderHandler) Advance(c *fiber.Ctx) error {
	var in dto.AdvanceReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Advance(c.Context(), c.Params("id"), entity.ReorderStatus(in.Status))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de reposición inválido"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la reposición no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de reposición
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderResponse
// @Router       /api/requests/reorder [get]
func (h *ReorderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
