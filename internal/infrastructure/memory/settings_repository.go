package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// SettingsRepository slots clave/valor en memoria. Es el binding por defecto
// (y el doble de test); con REDIS_ADDR configurado los slots sobreviven
// reinicios vía redisstore.SettingsRepository.
type SettingsRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository construye el almacén vacío.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{values: make(map[string]string)}
}

// Get devuelve el valor o "" si la clave no existe.
func (r *SettingsRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key], nil
}

// Set guarda el valor.
func (r *SettingsRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
