// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. El proceso es el único dueño de las colecciones: un reinicio
// re-siembra la data de referencia y pierde toda mutación.
package memory

import (
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// DepartmentRepository almacén en memoria de departamentos (solo lectura tras sembrar).
type DepartmentRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.Department
}

var _ repository.DepartmentRepository = (*DepartmentRepository)(nil)

// NewDepartmentRepository construye el repositorio con el snapshot inicial.
func NewDepartmentRepository(seed []entity.Department) *DepartmentRepository {
	r := &DepartmentRepository{byID: make(map[string]*entity.Department, len(seed))}
	for i := range seed {
		d := seed[i]
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = &d
	}
	return r
}

// GetByID devuelve el departamento o nil si no existe.
func (r *DepartmentRepository) GetByID(id string) (*entity.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

// List devuelve todos los departamentos en orden de sembrado.
func (r *DepartmentRepository) List() ([]*entity.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Department, 0, len(r.order))
	for _, id := range r.order {
		d := *r.byID[id]
		out = append(out, &d)
	}
	return out, nil
}
