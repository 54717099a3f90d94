// Package redisstore implementa el puerto de settings sobre Redis para que la
// credencial del asistente y el marcador de día del generador sobrevivan
// reinicios del proceso. Las colecciones de entidades siguen en memoria.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// SettingsRepository slots clave/valor respaldados por Redis.
type SettingsRepository struct {
	client *redis.Client
	prefix string
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository crea el cliente. prefix separa los slots de otras
// aplicaciones que compartan la instancia (ej. "storeops:").
func NewSettingsRepository(cfg Config, prefix string) *SettingsRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &SettingsRepository{client: client, prefix: prefix}
}

// Ping verifica conectividad.
func (r *SettingsRepository) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("cliente redis no configurado")
	}
	return r.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (r *SettingsRepository) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

// Get devuelve el valor o "" si la clave no existe.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings get %q: %w", key, err)
	}
	return val, nil
}

// Set guarda el valor sin expiración.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("settings set %q: %w", key, err)
	}
	return nil
}
