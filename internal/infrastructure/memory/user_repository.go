package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// UserRepository almacén en memoria de usuarios.
type UserRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository construye el repositorio con el snapshot inicial.
func NewUserRepository(seed []entity.User) *UserRepository {
	r := &UserRepository{byID: make(map[string]*entity.User, len(seed))}
	for i := range seed {
		u := seed[i]
		r.order = append(r.order, u.ID)
		r.byID[u.ID] = &u
	}
	return r
}

// Create agrega un usuario nuevo.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("usuario duplicado: %s", user.ID)
	}
	u := *user
	r.order = append(r.order, u.ID)
	r.byID[u.ID] = &u
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

// FindByEmail busca por email (case-insensitive); nil si no existe.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		u := r.byID[id]
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario existente.
func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[user.ID]; !exists {
		return fmt.Errorf("usuario no existe: %s", user.ID)
	}
	u := *user
	r.byID[u.ID] = &u
	return nil
}

// List devuelve todos los usuarios en orden de inserción.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		u := *r.byID[id]
		out = append(out, &u)
	}
	return out, nil
}
