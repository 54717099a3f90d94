package dto

import "time"

// CreateTaskRequest entrada para crear una tarea manual.
type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	DepartmentID string     `json:"department_id" validate:"required"`
	AssignedToID string     `json:"assigned_to_id"`
	Priority     string     `json:"priority"`  // High | Medium | Low; Medium por defecto
	Frequency    string     `json:"frequency"` // Daily | Weekly | Monthly
	DueDate      *time.Time `json:"due_date"`
	Instructions string     `json:"instructions"`
}

// UpdateTaskStatusRequest entrada para mover una tarea en el tablero.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"` // Todo | In Progress | Done
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	DepartmentID  string     `json:"department_id"`
	AssignedToID  string     `json:"assigned_to_id,omitempty"`
	Priority      string     `json:"priority"`
	Frequency     string     `json:"frequency,omitempty"`
	DueDate       time.Time  `json:"due_date"`
	Status        string     `json:"status"`
	Instructions  string     `json:"instructions,omitempty"`
	IsRecurring   bool       `json:"is_recurring"`
	GeneratedDate string     `json:"generated_date,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// GenerateTasksResponse resultado de una corrida del generador de recurrentes.
type GenerateTasksResponse struct {
	Generated int            `json:"generated"`
	Tasks     []TaskResponse `json:"tasks"`
}
