package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// TimeOffRepository almacén en memoria de solicitudes de tiempo libre.
type TimeOffRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.TimeOffRequest
}

var _ repository.TimeOffRepository = (*TimeOffRepository)(nil)

// NewTimeOffRepository construye el repositorio vacío.
func NewTimeOffRepository() *TimeOffRepository {
	return &TimeOffRepository{byID: make(map[string]*entity.TimeOffRequest)}
}

// Create agrega una solicitud nueva.
func (r *TimeOffRepository) Create(req *entity.TimeOffRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[req.ID]; exists {
		return fmt.Errorf("solicitud duplicada: %s", req.ID)
	}
	q := *req
	r.order = append(r.order, q.ID)
	r.byID[q.ID] = &q
	return nil
}

// GetByID devuelve la solicitud o nil si no existe.
func (r *TimeOffRepository) GetByID(id string) (*entity.TimeOffRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *q
	return &out, nil
}

// Update reemplaza la solicitud existente.
func (r *TimeOffRepository) Update(req *entity.TimeOffRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[req.ID]; !exists {
		return fmt.Errorf("solicitud no existe: %s", req.ID)
	}
	q := *req
	r.byID[q.ID] = &q
	return nil
}

// List devuelve todas las solicitudes en orden de inserción.
func (r *TimeOffRepository) List() ([]*entity.TimeOffRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.TimeOffRequest, 0, len(r.order))
	for _, id := range r.order {
		q := *r.byID[id]
		out = append(out, &q)
	}
	return out, nil
}

// ReorderRepository almacén en memoria de solicitudes de reposición.
type ReorderRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.ReorderRequest
}

var _ repository.ReorderRepository = (*ReorderRepository)(nil)

// NewReorderRepository construye el repositorio vacío.
func NewReorderRepository() *ReorderRepository {
	return &ReorderRepository{byID: make(map[string]*entity.ReorderRequest)}
}

// Create agrega una solicitud nueva.
func (r *ReorderRepository) Create(req *entity.ReorderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[req.ID]; exists {
		return fmt.Errorf("solicitud duplicada: %s", req.ID)
	}
	q := *req
	r.order = append(r.order, q.ID)
	r.byID[q.ID] = &q
	return nil
}

// GetByID devuelve la solicitud o nil si no existe.
func (r *ReorderRepository) GetByID(id string) (*entity.ReorderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *q
	return &out, nil
}

// Update reemplaza la solicitud existente.
func (r *ReorderRepository) Update(req *entity.ReorderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[req.ID]; !exists {
		return fmt.Errorf("solicitud no existe: %s", req.ID)
	}
	q := *req
	r.byID[q.ID] = &q
	return nil
}

// List devuelve todas las solicitudes en orden de inserción.
func (r *ReorderRepository) List() ([]*entity.ReorderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ReorderRequest, 0, len(r.order))
	for _, id := range r.order {
		q := *r.byID[id]
		out = append(out, &q)
	}
	return out, nil
}
