package dto

import "github.com/shopspring/decimal"

// ShiftInput un turno propuesto por el armador de horarios.
type ShiftInput struct {
	ID        string `json:"id"` // opcional; se asigna si viene vacío
	UserID    string `json:"user_id" validate:"required"`
	Date      string `json:"date" validate:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" validate:"required"` // HH:mm
	EndTime   string `json:"end_time" validate:"required"`   // HH:mm
}

// UpsertShiftsRequest lote de turnos. Los turnos existentes con el mismo par
// (usuario, fecha) se reemplazan: reenviar la misma semana sobrescribe.
type UpsertShiftsRequest struct {
	Shifts []ShiftInput `json:"shifts" validate:"required,min=1"`
}

// ShiftResponse salida de un turno; Hours es derivado, no se almacena.
type ShiftResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Hours     decimal.Decimal `json:"hours"`
}
