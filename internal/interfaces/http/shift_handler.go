package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/schedule"
	"github.com/jhoicas/storeops-api/internal/domain"
)

// ShiftHandler maneja el horario semanal de turnos.
type ShiftHandler struct {
	uc *schedule.ScheduleUseCase
}

// NewShiftHandler construye el handler de turnos.
func NewShiftHandler(uc *schedule.ScheduleUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Upsert godoc
// @Summary      Guardar turnos en lote
// @Description  Reemplaza los turnos existentes con el mismo par (usuario, fecha):
//               reenviar la misma semana editada sobrescribe sin duplicar.
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertShiftsRequest  true  "lote de turnos"
// @Success      200   {array}   dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shifts [put]
func (h *ShiftHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertShiftsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpsertShifts(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "algún turno del lote es inválido; no se guardó nada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Description  Filtra opcionalmente por rango de fechas con ?from=YYYY-MM-DD&to=YYYY-MM-DD.
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        from  query     string  false  "fecha inicial inclusive"
// @Param        to    query     string  false  "fecha final inclusive"
// @Success      200   {array}   dto.ShiftResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
