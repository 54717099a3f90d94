package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/requests"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
)

// TimeOffHandler maneja las solicitudes de tiempo libre.
type TimeOffHandler struct {
	uc *requests.TimeOffUseCase
}

// NewTimeOffHandler construye el handler de tiempo libre.
func NewTimeOffHandler(uc *requests.TimeOffUseCase) *TimeOffHandler {
	return &TimeOffHandler{uc: uc}
}

// Submit godoc
// @Summary      Solicitar tiempo libre
// @Description  El solicitante sale del token; la solicitud nace Pending y
//               notifica al encargado por email.
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeOffRequest  true  "tipo, rango de fechas, motivo"
// @Success      201   {object}  dto.TimeOffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requests/timeoff [post]
func (h *TimeOffHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateTimeOffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la solicitud inválidos"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el solicitante no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Decide godoc
// @Summary      Aprobar o rechazar una solicitud de tiempo libre
// @Description  Re-decidir una solicitud ya decidida sobrescribe el estado
//               anterior y vuelve a notificar al solicitante.
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la solicitud"
// @Param        body  body  dto.DecideTimeOffRequest  true  "Approved | Rejected"
// @Success      200   {object}  dto.TimeOffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/requests/timeoff/{id}/decision [patch]
func (h *TimeOffHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideTimeOffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Decide(c.Context(), c.Params("id"), entity.RequestStatus(in.Status))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la decisión debe ser Approved o Rejected"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la solicitud no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de tiempo libre
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TimeOffResponse
// @Router       /api/requests/timeoff [get]
func (h *TimeOffHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
