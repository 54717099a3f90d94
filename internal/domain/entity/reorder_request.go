package entity

import "time"

// ReorderStatus estado de una solicitud de reposición.
// El flujo esperado es Pending → Ordered → Restocked, pero ninguna transición
// está bloqueada: el aprobador puede mover el estado en cualquier dirección.
type ReorderStatus string

const (
	ReorderPending   ReorderStatus = "Pending"
	ReorderOrdered   ReorderStatus = "Ordered"
	ReorderRestocked ReorderStatus = "Restocked"
)

// ValidReorderStatus indica si el valor es un estado de reposición conocido.
func ValidReorderStatus(s ReorderStatus) bool {
	switch s {
	case ReorderPending, ReorderOrdered, ReorderRestocked:
		return true
	}
	return false
}

// ReorderRequest solicitud de reposición de producto iniciada por un empleado.
type ReorderRequest struct {
	ID          string
	UserID      string
	ProductName string
	Category    string
	Quantity    int
	Reason      string
	Priority    TaskPriority
	Status      ReorderStatus
	CreatedAt   time.Time
}
