package repository

import "github.com/jhoicas/storeops-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task (DIP).
// Las tareas nunca se eliminan; solo se crean y se muta su estado.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error) // nil si no existe
	Update(task *entity.Task) error
	List() ([]*entity.Task, error)
	ListByDepartment(departmentID string) ([]*entity.Task, error)
}
