package dto

import "time"

// CreateTimeOffRequest entrada para solicitar tiempo libre.
type CreateTimeOffRequest struct {
	Type      string `json:"type" validate:"required"` // Vacation | Sick | Personal
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason"`
}

// DecideTimeOffRequest entrada del aprobador.
type DecideTimeOffRequest struct {
	Status string `json:"status" validate:"required"` // Approved | Rejected
}

// TimeOffResponse salida de una solicitud de tiempo libre.
type TimeOffResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReorderRequest entrada para solicitar reposición de producto.
type CreateReorderRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"` // High | Medium | Low; Medium por defecto
}

// AdvanceReorderRequest entrada para mover el estado de una reposición.
type AdvanceReorderRequest struct {
	Status string `json:"status" validate:"required"` // Pending | Ordered | Restocked
}

// ReorderResponse salida de una solicitud de reposición.
type ReorderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
