package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
	"github.com/jhoicas/storeops-api/pkg/logger"
)

// GeneratedDateLayout identidad de día usada por el marcador y GeneratedDate.
const GeneratedDateLayout = "2006-01-02"

// GeneratorConfig parámetros de la regla de generación.
type GeneratorConfig struct {
	WeekStart     time.Weekday // día que dispara las plantillas Weekly (lunes por defecto)
	DueHour       int          // hora de corte local del vencimiento (20 = 8PM)
	OperatorEmail string       // destino del resumen de generación
}

// Generator instancia tareas recurrentes desde las plantillas estáticas.
// Corre como mucho una vez por día calendario: el marcador persistido guarda
// el último día ejecutado y una segunda corrida el mismo día es no-op.
// No hay back-fill: si el proceso no corre el día correcto, las recurrentes
// de ese día se pierden.
type Generator struct {
	templates []entity.TaskTemplate
	tasks     repository.TaskRepository
	settings  repository.SettingsRepository
	notifier  ports.Notifier
	log       *logger.Logger
	cfg       GeneratorConfig
}

// NewGenerator construye el generador. La fecha de referencia es siempre un
// argumento explícito de Run para que los tests puedan fijar días arbitrarios.
func NewGenerator(
	templates []entity.TaskTemplate,
	tasks repository.TaskRepository,
	settings repository.SettingsRepository,
	notifier ports.Notifier,
	log *logger.Logger,
	cfg GeneratorConfig,
) *Generator {
	if cfg.DueHour == 0 {
		cfg.DueHour = 20
	}
	return &Generator{
		templates: templates,
		tasks:     tasks,
		settings:  settings,
		notifier:  notifier,
		log:       log,
		cfg:       cfg,
	}
}

// Run ejecuta la regla para el día de ref. Devuelve las tareas creadas (vacío
// si el marcador ya apunta a ese día). El marcador se actualiza aunque ninguna
// plantilla aplique, para que el gate diario sea consistente.
func (g *Generator) Run(ctx context.Context, ref time.Time) ([]*entity.Task, error) {
	day := ref.Format(GeneratedDateLayout)

	marker, err := g.settings.Get(ctx, repository.SettingLastTaskGen)
	if err != nil {
		return nil, fmt.Errorf("leer marcador de generación: %w", err)
	}
	if marker == day {
		return nil, nil // ya corrió hoy
	}

	isWeekStart := ref.Weekday() == g.cfg.WeekStart
	isFirstOfMonth := ref.Day() == 1

	var created []*entity.Task
	for _, tpl := range g.templates {
		include := false
		switch tpl.Frequency {
		case entity.FrequencyDaily:
			include = true
		case entity.FrequencyWeekly:
			include = isWeekStart
		case entity.FrequencyMonthly:
			include = isFirstOfMonth
		}
		if !include {
			continue
		}

		task := &entity.Task{
			ID:           uuid.New().String(),
			Title:        tpl.Title,
			DepartmentID: tpl.DepartmentID,
			Priority:     entity.PriorityMedium,
			Frequency:    tpl.Frequency,
			DueDate: time.Date(
				ref.Year(), ref.Month(), ref.Day(),
				g.cfg.DueHour, 0, 0, 0, ref.Location(),
			),
			Status:        entity.StatusTodo,
			Instructions:  tpl.Notes,
			IsRecurring:   true,
			GeneratedDate: day,
			CreatedAt:     ref,
		}
		if err := g.tasks.Create(task); err != nil {
			return nil, fmt.Errorf("crear tarea recurrente %q: %w", tpl.Title, err)
		}
		created = append(created, task)
	}

	if len(created) > 0 {
		err := g.notifier.Send(ctx, ports.Notification{
			To:      g.cfg.OperatorEmail,
			Subject: "Daily Tasks Generated",
			Body:    fmt.Sprintf("%d tasks created for today.", len(created)),
			Channel: ports.ChannelEmail,
		})
		if err != nil {
			// El fallo de notificación se registra y no se propaga.
			g.log.Warn().Err(err).Msg("notificación de generación fallida")
		}
	}

	if err := g.settings.Set(ctx, repository.SettingLastTaskGen, day); err != nil {
		return nil, fmt.Errorf("actualizar marcador de generación: %w", err)
	}

	g.log.Info().Str("day", day).Int("generated", len(created)).Msg("generador de recurrentes ejecutado")
	return created, nil
}
