// Package schedule implementa el armador de horarios: upsert masivo de turnos
// con reemplazo por (usuario, fecha) y el cálculo derivado de horas trabajadas.
package schedule

import (
	"github.com/google/uuid"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// ScheduleUseCase operaciones sobre el calendario de turnos.
type ScheduleUseCase struct {
	repo repository.ShiftRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ShiftRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// UpsertShifts reemplaza e inserta el lote. Antes de insertar se eliminan
// todos los turnos existentes cuyo par (usuario, fecha) coincida con algún
// turno entrante: reenviar la misma semana sobrescribe en vez de duplicar.
// No se valida solapamiento entre turnos distintos del mismo usuario.
func (uc *ScheduleUseCase) UpsertShifts(in dto.UpsertShiftsRequest) ([]dto.ShiftResponse, error) {
	if len(in.Shifts) == 0 {
		return nil, domain.ErrInvalidInput
	}

	incoming := make([]entity.Shift, 0, len(in.Shifts))
	for _, s := range in.Shifts {
		shift := entity.Shift{
			ID:        s.ID,
			UserID:    s.UserID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
		if shift.ID == "" {
			shift.ID = uuid.New().String()
		}
		if err := shift.Validate(); err != nil {
			return nil, domain.ErrInvalidInput
		}
		incoming = append(incoming, shift)
	}

	// Primera pasada: limpiar cada par (usuario, fecha) una sola vez.
	seen := make(map[[2]string]bool, len(incoming))
	for _, s := range incoming {
		key := [2]string{s.UserID, s.Date}
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := uc.repo.DeleteByUserAndDate(s.UserID, s.Date); err != nil {
			return nil, err
		}
	}

	// Segunda pasada: insertar el lote completo.
	out := make([]dto.ShiftResponse, 0, len(incoming))
	for i := range incoming {
		if err := uc.repo.Create(&incoming[i]); err != nil {
			return nil, err
		}
		resp, err := toShiftResponse(&incoming[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// List devuelve los turnos del rango inclusivo [from, to] (ambos opcionales).
func (uc *ScheduleUseCase) List(from, to string) ([]dto.ShiftResponse, error) {
	list, err := uc.repo.List(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		resp, err := toShiftResponse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func toShiftResponse(s *entity.Shift) (*dto.ShiftResponse, error) {
	hours, err := s.Hours()
	if err != nil {
		return nil, err
	}
	return &dto.ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Hours:     hours,
	}, nil
}
