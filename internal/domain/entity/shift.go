package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de fecha y hora usados por los turnos.
const (
	ShiftDateLayout = "2006-01-02"
	ShiftTimeLayout = "15:04"
)

// Shift ventana de trabajo de un día para un usuario. EndTime puede ser
// numéricamente anterior a StartTime: eso significa turno nocturno que cruza
// la medianoche. No se valida solapamiento entre turnos del mismo usuario.
type Shift struct {
	ID        string
	UserID    string
	Date      string // YYYY-MM-DD
	StartTime string // HH:mm
	EndTime   string // HH:mm
}

// Validate verifica formato de fecha y horas.
func (s Shift) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("turno sin user_id")
	}
	if _, err := time.Parse(ShiftDateLayout, s.Date); err != nil {
		return fmt.Errorf("fecha de turno inválida %q: %w", s.Date, err)
	}
	if _, err := time.Parse(ShiftTimeLayout, s.StartTime); err != nil {
		return fmt.Errorf("hora de inicio inválida %q: %w", s.StartTime, err)
	}
	if _, err := time.Parse(ShiftTimeLayout, s.EndTime); err != nil {
		return fmt.Errorf("hora de fin inválida %q: %w", s.EndTime, err)
	}
	return nil
}

// Hours devuelve las horas trabajadas del turno, redondeadas a un decimal.
// Si la diferencia es negativa se suman 24 horas (convención de turno nocturno).
// Es un valor derivado de solo lectura: no se almacena.
func (s Shift) Hours() (decimal.Decimal, error) {
	start, err := time.Parse(ShiftTimeLayout, s.StartTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("hora de inicio inválida %q: %w", s.StartTime, err)
	}
	end, err := time.Parse(ShiftTimeLayout, s.EndTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("hora de fin inválida %q: %w", s.EndTime, err)
	}
	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		minutes += 24 * 60
	}
	hours := decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(1)
	return hours, nil
}
