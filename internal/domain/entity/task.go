package entity

import "time"

// TaskFrequency cadencia con la que el generador instancia la plantilla.
type TaskFrequency string

const (
	FrequencyDaily   TaskFrequency = "Daily"
	FrequencyWeekly  TaskFrequency = "Weekly"
	FrequencyMonthly TaskFrequency = "Monthly"
)

// TaskPriority prioridad de la tarea.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// ValidPriority indica si el valor es una prioridad conocida.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskStatus estado del tablero de tareas.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "Todo"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// ValidTaskStatus indica si el valor es un estado de tarea conocido.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task tarea asignable por departamento. Las tareas nunca se eliminan: el estado
// muta en sitio y CompletedAt se fija si y solo si el estado pasa a Done.
// GeneratedDate identifica el día (YYYY-MM-DD) en que el generador la creó.
type Task struct {
	ID            string
	Title         string
	DepartmentID  string
	AssignedToID  string
	Priority      TaskPriority
	Frequency     TaskFrequency
	DueDate       time.Time
	Status        TaskStatus
	Instructions  string
	IsRecurring   bool
	GeneratedDate string
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// TaskTemplate plantilla estática de la que el generador deriva tareas recurrentes.
type TaskTemplate struct {
	Title        string
	Frequency    TaskFrequency
	DepartmentID string
	Notes        string
}
