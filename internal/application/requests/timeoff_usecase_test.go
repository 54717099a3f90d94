package requests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/application/requests"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
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

func newTimeOffUseCase(t *testing.T) (*requests.TimeOffUseCase, *fakeNotifier) {
	t.Helper()
	users := memory.NewUserRepository([]entity.User{
		{ID: "u3", Name: "John", Role: entity.RoleEmployee, DepartmentID: "dept_beer", Email: "john@store.com"},
	})
	notifier := &fakeNotifier{}
	uc := requests.NewTimeOffUseCase(memory.NewTimeOffRepository(), users, notifier, logger.Nop(), requests.TimeOffConfig{
		ManagerEmail: "manager@store.com",
	})
	return uc, notifier
}

func validTimeOff() dto.CreateTimeOffRequest {
	return dto.CreateTimeOffRequest{
		Type:      "Vacation",
		StartDate: "2026-02-10",
		EndDate:   "2026-02-14",
		Reason:    "family trip",
	}
}

// Toda solicitud nace Pending y avisa al encargado por email.
func TestTimeOff_SubmitNacePendingYNotifica(t *testing.T) {
	uc, notifier := newTimeOffUseCase(t)

	out, err := uc.Submit(context.Background(), "u3", validTimeOff())
	require.NoError(t, err)
	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, "u3", out.UserID)

	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, "manager@store.com", n.To)
	assert.Equal(t, "New Time Off Request", n.Subject)
	assert.Equal(t, "John requested time off.", n.Body)
	assert.Equal(t, ports.ChannelEmail, n.Channel)
}

func TestTimeOff_SubmitTipoInvalido(t *testing.T) {
	uc, _ := newTimeOffUseCase(t)

	in := validTimeOff()
	in.Type = "Sabbatical"
	_, err := uc.Submit(context.Background(), "u3", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimeOff_SubmitSolicitanteDesconocido(t *testing.T) {
	uc, _ := newTimeOffUseCase(t)

	_, err := uc.Submit(context.Background(), "ghost", validTimeOff())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Aprobar notifica al solicitante por su dirección registrada, canal both.
func TestTimeOff_DecideNotificaAlSolicitante(t *testing.T) {
	uc, notifier := newTimeOffUseCase(t)

	created, err := uc.Submit(context.Background(), "u3", validTimeOff())
	require.NoError(t, err)

	out, err := uc.Decide(context.Background(), created.ID, entity.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, "Approved", out.Status)

	require.Len(t, notifier.sent, 2, "submit + decisión")
	n := notifier.sent[1]
	assert.Equal(t, "john@store.com", n.To)
	assert.Equal(t, "Time Off Approved", n.Subject)
	assert.Equal(t, "Your request has been Approved.", n.Body)
	assert.Equal(t, ports.ChannelBoth, n.Channel)
}

// Re-decidir sobrescribe la decisión anterior y vuelve a notificar.
func TestTimeOff_RedecidirSobrescribe(t *testing.T) {
	uc, notifier := newTimeOffUseCase(t)

	created, err := uc.Submit(context.Background(), "u3", validTimeOff())
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), created.ID, entity.RequestApproved)
	require.NoError(t, err)
	out, err := uc.Decide(context.Background(), created.ID, entity.RequestRejected)
	require.NoError(t, err)

	assert.Equal(t, "Rejected", out.Status, "la última decisión gana")
	assert.Len(t, notifier.sent, 3, "cada decisión notifica de nuevo")
}

// Solo Approved y Rejected son decisiones; volver a Pending no es una.
func TestTimeOff_DecidePendingEsInvalido(t *testing.T) {
	uc, _ := newTimeOffUseCase(t)

	created, err := uc.Submit(context.Background(), "u3", validTimeOff())
	require.NoError(t, err)

	_, err = uc.Decide(context.Background(), created.ID, entity.RequestPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Decidir un id desconocido falla sin crear ninguna solicitud fantasma.
func TestTimeOff_DecideIDDesconocido(t *testing.T) {
	uc, _ := newTimeOffUseCase(t)

	_, err := uc.Decide(context.Background(), "no-such-id", entity.RequestApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "no debe aparecer ninguna solicitud nueva")
}

func TestTimeOff_ClockInyectado(t *testing.T) {
	uc, _ := newTimeOffUseCase(t)
	fixed := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return fixed })

	out, err := uc.Submit(context.Background(), "u3", validTimeOff())
	require.NoError(t, err)
	assert.Equal(t, fixed, out.CreatedAt)
}
