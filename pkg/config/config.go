package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	AI     AIConfig
	Notify NotifyConfig
	Tasks  TasksConfig
	Redis  RedisConfig
	Seed   SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AIConfig proveedor de generación de texto del asistente. La API key puede
// venir por env o ingresarse en caliente vía el slot de settings; la de env
// actúa como fallback.
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// NotifyConfig destinos fijos del gateway de notificaciones.
type NotifyConfig struct {
	ManagerEmail string // operador que recibe solicitudes nuevas y el resumen del generador
	OwnerAddress string // escalamiento SMS de reposiciones urgentes
}

// TasksConfig parámetros del generador de tareas recurrentes.
type TasksConfig struct {
	WeekStart string // día que dispara las Weekly ("Monday" por defecto)
	DueHour   int    // hora de corte local del vencimiento
}

// ParseWeekStart traduce el nombre del día; lunes si no se reconoce.
func (c TasksConfig) ParseWeekStart() time.Weekday {
	switch strings.ToLower(c.WeekStart) {
	case "sunday":
		return time.Sunday
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// RedisConfig binding opcional de los slots de settings. Con Addr vacío los
// slots viven en memoria y no sobreviven reinicios.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SeedConfig data de referencia. Path vacío usa el seed embebido.
type SeedConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "store-ops"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "store-ops"),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Notify: NotifyConfig{
			ManagerEmail: getString(v, "NOTIFY_MANAGER_EMAIL", "manager@store.com"),
			OwnerAddress: getString(v, "NOTIFY_OWNER_ADDRESS", "owner@store.com"),
		},
		Tasks: TasksConfig{
			WeekStart: getString(v, "TASKS_WEEK_START", "Monday"),
			DueHour:   getInt(v, "TASKS_DUE_HOUR", 20),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Seed: SeedConfig{
			Path: getString(v, "SEED_PATH", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
