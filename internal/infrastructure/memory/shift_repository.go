package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// ShiftRepository almacén en memoria de turnos.
type ShiftRepository struct {
	mu     sync.RWMutex
	shifts []entity.Shift
}

var _ repository.ShiftRepository = (*ShiftRepository)(nil)

// NewShiftRepository construye el repositorio vacío.
func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{}
}

// Create agrega un turno.
func (r *ShiftRepository) Create(shift *entity.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, *shift)
	return nil
}

// DeleteByUserAndDate elimina todos los turnos del par (usuario, fecha).
// No es error que no exista ninguno.
func (r *ShiftRepository) DeleteByUserAndDate(userID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.shifts[:0]
	for _, s := range r.shifts {
		if s.UserID == userID && s.Date == date {
			continue
		}
		kept = append(kept, s)
	}
	r.shifts = kept
	return nil
}

// List devuelve los turnos cuyo día cae dentro del rango inclusivo [from, to].
// Las fechas YYYY-MM-DD comparan lexicográficamente; "" significa sin límite.
func (r *ShiftRepository) List(from, to string) ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Shift
	for i := range r.shifts {
		s := r.shifts[i]
		if from != "" && s.Date < from {
			continue
		}
		if to != "" && s.Date > to {
			continue
		}
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

// ListByUser devuelve los turnos de un usuario ordenados por fecha.
func (r *ShiftRepository) ListByUser(userID string) ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Shift
	for i := range r.shifts {
		if r.shifts[i].UserID != userID {
			continue
		}
		s := r.shifts[i]
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
