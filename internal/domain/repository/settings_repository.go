package repository

import "context"

// Claves de los slots de configuración persistidos entre sesiones.
const (
	SettingAPIKey      = "GEMINI_API_KEY"
	SettingLastTaskGen = "LAST_TASK_GEN"
)

// SettingsRepository define el puerto clave/valor para los slots persistidos:
// la credencial del asistente y el marcador de día del generador de tareas.
// Get devuelve "" sin error cuando la clave no existe.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
