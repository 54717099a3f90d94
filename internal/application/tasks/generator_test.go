package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/application/tasks"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
	"github.com/jhoicas/storeops-api/internal/infrastructure/memory"
	"github.com/jhoicas/storeops-api/pkg/logger"
)

// fakeNotifier acumula las notificaciones enviadas.
type fakeNotifier struct {
	sent []ports.Notification
}

func (f *fakeNotifier) Send(_ context.Context, n ports.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

var testTemplates = []entity.TaskTemplate{
	{Title: "Face shelves", Frequency: entity.FrequencyDaily, DepartmentID: "dept_beer"},
	{Title: "Check keg levels", Frequency: entity.FrequencyDaily, DepartmentID: "dept_beer"},
	{Title: "Rotate stock", Frequency: entity.FrequencyWeekly, DepartmentID: "dept_wine"},
	{Title: "Deep clean coolers", Frequency: entity.FrequencyMonthly, DepartmentID: "dept_beer"},
}

func newGenerator(t *testing.T, templates []entity.TaskTemplate) (*tasks.Generator, *memory.TaskRepository, *memory.SettingsRepository, *fakeNotifier) {
	t.Helper()
	taskRepo := memory.NewTaskRepository()
	settings := memory.NewSettingsRepository()
	notifier := &fakeNotifier{}
	gen := tasks.NewGenerator(templates, taskRepo, settings, notifier, logger.Nop(), tasks.GeneratorConfig{
		WeekStart:     time.Monday,
		DueHour:       20,
		OperatorEmail: "manager@store.com",
	})
	return gen, taskRepo, settings, notifier
}

// mustDay construye una fecha local a las 06:00 del día indicado.
func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	require.NoError(t, err)
	return day.Add(6 * time.Hour)
}

// Un martes cualquiera: solo las plantillas Daily aplican.
func TestGenerator_MartesSoloDiarias(t *testing.T) {
	gen, _, _, _ := newGenerator(t, testTemplates)

	created, err := gen.Run(context.Background(), mustDay(t, "2026-01-06")) // martes
	require.NoError(t, err)
	require.Len(t, created, 2, "un martes común solo genera las diarias")

	for _, task := range created {
		assert.Equal(t, entity.PriorityMedium, task.Priority)
		assert.Equal(t, entity.StatusTodo, task.Status)
		assert.True(t, task.IsRecurring)
		assert.Equal(t, "2026-01-06", task.GeneratedDate)
		assert.Equal(t, 20, task.DueDate.Hour(), "el vencimiento es a las 8PM local")
		assert.Equal(t, entity.FrequencyDaily, task.Frequency)
	}
}

// Lunes: diarias + semanales.
func TestGenerator_LunesIncluyeSemanales(t *testing.T) {
	gen, _, _, _ := newGenerator(t, testTemplates)

	created, err := gen.Run(context.Background(), mustDay(t, "2026-01-05")) // lunes
	require.NoError(t, err)
	assert.Len(t, created, 3, "lunes genera diarias y semanales")
}

// Primero de mes: diarias + mensuales.
func TestGenerator_PrimeroDeMesIncluyeMensuales(t *testing.T) {
	gen, _, _, _ := newGenerator(t, testTemplates)

	created, err := gen.Run(context.Background(), mustDay(t, "2026-01-01")) // jueves 1ro
	require.NoError(t, err)
	assert.Len(t, created, 3, "el día 1 genera diarias y mensuales")
}

// Lunes primero de mes: las tres cadencias en una sola corrida.
func TestGenerator_LunesPrimeroDeMes_TodasLasCadencias(t *testing.T) {
	gen, _, _, _ := newGenerator(t, testTemplates)

	created, err := gen.Run(context.Background(), mustDay(t, "2026-06-01")) // lunes 1ro
	require.NoError(t, err)
	assert.Len(t, created, 4)
}

// El gate diario: una segunda corrida el mismo día es no-op.
func TestGenerator_SegundaCorridaMismoDiaEsNoOp(t *testing.T) {
	gen, taskRepo, _, notifier := newGenerator(t, testTemplates)
	ref := mustDay(t, "2026-01-06")

	first, err := gen.Run(context.Background(), ref)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := gen.Run(context.Background(), ref.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, second, "la segunda corrida del día no crea nada")

	all, err := taskRepo.List()
	require.NoError(t, err)
	assert.Len(t, all, 2, "no hay duplicados en el tablero")
	assert.Len(t, notifier.sent, 1, "solo se notifica la primera corrida")
}

// El marcador avanza aunque ninguna plantilla aplique ese día.
func TestGenerator_MarcadorAvanzaSinTareas(t *testing.T) {
	soloSemanales := []entity.TaskTemplate{
		{Title: "Rotate stock", Frequency: entity.FrequencyWeekly, DepartmentID: "dept_wine"},
	}
	gen, _, settings, notifier := newGenerator(t, soloSemanales)

	created, err := gen.Run(context.Background(), mustDay(t, "2026-01-06")) // martes
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, notifier.sent, "sin tareas creadas no hay notificación")

	marker, err := settings.Get(context.Background(), repository.SettingLastTaskGen)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", marker, "el marcador avanza aunque no se cree nada")
}

// La notificación de resumen lleva el conteo y va por email al operador.
func TestGenerator_NotificacionDeResumen(t *testing.T) {
	gen, _, _, notifier := newGenerator(t, testTemplates)

	_, err := gen.Run(context.Background(), mustDay(t, "2026-01-06"))
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, "manager@store.com", n.To)
	assert.Equal(t, "Daily Tasks Generated", n.Subject)
	assert.Equal(t, "2 tasks created for today.", n.Body)
	assert.Equal(t, ports.ChannelEmail, n.Channel)
}

// Día siguiente: vuelve a generar con la nueva fecha.
func TestGenerator_DiaSiguienteGeneraDeNuevo(t *testing.T) {
	gen, taskRepo, _, _ := newGenerator(t, testTemplates)

	_, err := gen.Run(context.Background(), mustDay(t, "2026-01-06"))
	require.NoError(t, err)
	created, err := gen.Run(context.Background(), mustDay(t, "2026-01-07"))
	require.NoError(t, err)
	assert.Len(t, created, 2)

	all, err := taskRepo.List()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
