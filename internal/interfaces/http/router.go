package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/assistant"
	"github.com/jhoicas/storeops-api/internal/application/auth"
	"github.com/jhoicas/storeops-api/internal/application/requests"
	"github.com/jhoicas/storeops-api/internal/application/schedule"
	"github.com/jhoicas/storeops-api/internal/application/tasks"
	"github.com/jhoicas/storeops-api/internal/application/usecase"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	DepartmentUC *usecase.DepartmentUseCase
	CatalogUC    *usecase.CatalogUseCase
	TaskUC       *tasks.TaskUseCase
	Generator    *tasks.Generator
	TimeOffUC    *requests.TimeOffUseCase
	ReorderUC    *requests.ReorderUseCase
	ScheduleUC   *schedule.ScheduleUseCase
	AssistantUC  *assistant.AssistantUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Las lecturas requieren solo un token válido; las mutaciones administrativas
// (empleados, decisiones, horarios, generador, credencial del asistente) exigen
// además rol Owner o Manager. Cualquiera puede solicitar tiempo libre o una
// reposición y mover tareas en el tablero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	manage := RequireRole(entity.RoleOwner, entity.RoleManager)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Departments (protegido, solo lectura)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)

	// Users (lectura para todos; altas y ediciones solo Owner/Manager)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", manage, userHandler.Create)
	users.Put("/:id", manage, userHandler.Update)

	// Tasks (el tablero es de todos; crear y generar es de Owner/Manager)
	taskGroup := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC, deps.Generator)
	taskGroup.Get("/", taskHandler.List)
	taskGroup.Patch("/:id/status", taskHandler.UpdateStatus)
	taskGroup.Post("/", manage, taskHandler.Create)
	taskGroup.Post("/generate", manage, taskHandler.Generate)

	// Requests (cualquiera solicita; Owner/Manager decide)
	reqGroup := protected.Group("/requests")
	timeOffHandler := NewTimeOffHandler(deps.TimeOffUC)
	reqGroup.Get("/timeoff", timeOffHandler.List)
	reqGroup.Post("/timeoff", timeOffHandler.Submit)
	reqGroup.Patch("/timeoff/:id/decision", manage, timeOffHandler.Decide)

	reorderHandler := NewReorderHandler(deps.ReorderUC)
	reqGroup.Get("/reorder", reorderHandler.List)
	reqGroup.Post("/reorder", reorderHandler.Submit)
	reqGroup.Patch("/reorder/:id/status", manage, reorderHandler.Advance)

	// Shifts (lectura para todos; armar el horario es de Owner/Manager)
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ScheduleUC)
	shifts.Get("/", shiftHandler.List)
	shifts.Put("/", manage, shiftHandler.Upsert)

	// Assistant (chat para todos; la credencial es de Owner/Manager)
	assistantGroup := protected.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistantGroup.Post("/chat", assistantHandler.Chat)
	assistantGroup.Get("/credential", assistantHandler.CredentialStatus)
	assistantGroup.Put("/credential", manage, assistantHandler.SetCredential)

	// Catalog (protegido, solo lectura)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/", catalogHandler.List)
}
