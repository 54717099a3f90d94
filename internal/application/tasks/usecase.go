package tasks

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// TaskUseCase operaciones manuales sobre el tablero de tareas.
type TaskUseCase struct {
	repo     repository.TaskRepository
	deptRepo repository.DepartmentRepository
	now      func() time.Time
}

// NewTaskUseCase construye el caso de uso. now es inyectable para tests.
func NewTaskUseCase(repo repository.TaskRepository, deptRepo repository.DepartmentRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, deptRepo: deptRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *TaskUseCase) WithClock(now func() time.Time) *TaskUseCase {
	uc.now = now
	return uc
}

// Create agrega una tarea manual. Prioridad Medium por defecto; el departamento
// debe existir.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	dept, err := uc.deptRepo.GetByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.ErrNotFound
	}

	priority := entity.TaskPriority(in.Priority)
	if in.Priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	due := now
	if in.DueDate != nil {
		due = *in.DueDate
	}

	task := &entity.Task{
		ID:           uuid.New().String(),
		Title:        in.Title,
		DepartmentID: in.DepartmentID,
		AssignedToID: in.AssignedToID,
		Priority:     priority,
		Frequency:    entity.TaskFrequency(in.Frequency),
		DueDate:      due,
		Status:       entity.StatusTodo,
		Instructions: in.Instructions,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateStatus mueve la tarea en el tablero. CompletedAt se fija si y solo si
// el estado queda en Done; al salir de Done se limpia.
func (uc *TaskUseCase) UpdateStatus(id string, status entity.TaskStatus) (*dto.TaskResponse, error) {
	if !entity.ValidTaskStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	task.Status = status
	if status == entity.StatusDone {
		done := uc.now()
		task.CompletedAt = &done
	} else {
		task.CompletedAt = nil
	}
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List devuelve las tareas, opcionalmente filtradas por departamento.
func (uc *TaskUseCase) List(departmentID string) ([]dto.TaskResponse, error) {
	var (
		list []*entity.Task
		err  error
	)
	if departmentID != "" {
		list, err = uc.repo.ListByDepartment(departmentID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		DepartmentID:  t.DepartmentID,
		AssignedToID:  t.AssignedToID,
		Priority:      string(t.Priority),
		Frequency:     string(t.Frequency),
		DueDate:       t.DueDate,
		Status:        string(t.Status),
		Instructions:  t.Instructions,
		IsRecurring:   t.IsRecurring,
		GeneratedDate: t.GeneratedDate,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
	}
}

// ToResponses convierte tareas de dominio a DTOs (lo usa el handler de generación).
func ToResponses(list []*entity.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTaskResponse(t))
	}
	return out
}
