package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/tasks"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
)

// TaskHandler maneja el tablero de tareas y la corrida manual del generador.
type TaskHandler struct {
	uc  *tasks.TaskUseCase
	gen *tasks.Generator
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *tasks.TaskUseCase, gen *tasks.Generator) *TaskHandler {
	return &TaskHandler{uc: uc, gen: gen}
}

// Create godoc
// @Summary      Crear tarea manual
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "título, departamento, prioridad..."
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el departamento no existe"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la tarea inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Mover tarea en el tablero
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "Todo | In Progress | Done"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), entity.TaskStatus(in.Status))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de tarea inválido"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la tarea no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tareas
// @Description  Filtra opcionalmente por departamento con ?department_id=
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        department_id  query     string  false  "ID del departamento"
// @Success      200            {array}   dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("department_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Correr el generador de tareas recurrentes
// @Description  Idempotente por día: una segunda corrida el mismo día no crea nada.
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GenerateTasksResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tasks/generate [post]
func (h *TaskHandler) Generate(c *fiber.Ctx) error {
	created, err := h.gen.Run(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.GenerateTasksResponse{
		Generated: len(created),
		Tasks:     tasks.ToResponses(created),
	})
}
