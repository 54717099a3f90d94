package entity

import "time"

// TimeOffType motivo de la ausencia solicitada.
type TimeOffType string

const (
	TimeOffVacation TimeOffType = "Vacation"
	TimeOffSick     TimeOffType = "Sick"
	TimeOffPersonal TimeOffType = "Personal"
)

// ValidTimeOffType indica si el valor es un tipo de ausencia conocido.
func ValidTimeOffType(t TimeOffType) bool {
	switch t {
	case TimeOffVacation, TimeOffSick, TimeOffPersonal:
		return true
	}
	return false
}

// RequestStatus estado de una solicitud de tiempo libre.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// TimeOffRequest solicitud de tiempo libre. Nace en Pending; el aprobador la
// pasa a Approved o Rejected. StartDate y EndDate son días calendario (YYYY-MM-DD).
type TimeOffRequest struct {
	ID        string
	UserID    string
	Type      TimeOffType
	StartDate string
	EndDate   string
	Reason    string
	Status    RequestStatus
	CreatedAt time.Time
}
