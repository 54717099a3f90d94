package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// TaskRepository almacén en memoria de tareas.
type TaskRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.Task
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository construye el repositorio vacío (las tareas no se siembran).
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{byID: make(map[string]*entity.Task)}
}

// Create agrega una tarea nueva.
func (r *TaskRepository) Create(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[task.ID]; exists {
		return fmt.Errorf("tarea duplicada: %s", task.ID)
	}
	t := *task
	r.order = append(r.order, t.ID)
	r.byID[t.ID] = &t
	return nil
}

// GetByID devuelve la tarea o nil si no existe.
func (r *TaskRepository) GetByID(id string) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

// Update reemplaza la tarea existente.
func (r *TaskRepository) Update(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[task.ID]; !exists {
		return fmt.Errorf("tarea no existe: %s", task.ID)
	}
	t := *task
	r.byID[t.ID] = &t
	return nil
}

// List devuelve todas las tareas en orden de inserción.
func (r *TaskRepository) List() ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Task, 0, len(r.order))
	for _, id := range r.order {
		t := *r.byID[id]
		out = append(out, &t)
	}
	return out, nil
}

// ListByDepartment filtra por departamento.
func (r *TaskRepository) ListByDepartment(departmentID string) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Task
	for _, id := range r.order {
		if r.byID[id].DepartmentID == departmentID {
			t := *r.byID[id]
			out = append(out, &t)
		}
	}
	return out, nil
}
