package requests_test

import (
	"context"
	"testing"

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

func newReorderUseCase(t *testing.T) (*requests.ReorderUseCase, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	uc := requests.NewReorderUseCase(memory.NewReorderRepository(), notifier, logger.Nop(), requests.ReorderConfig{
		OwnerAddress: "owner@store.com",
	})
	return uc, notifier
}

// Prioridad High escala por SMS al dueño; la solicitud igualmente nace Pending.
func TestReorder_PrioridadAltaEscalaPorSMS(t *testing.T) {
	uc, notifier := newReorderUseCase(t)

	out, err := uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{
		ProductName: "Titos Vodka",
		Quantity:    12,
		Priority:    "High",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, "High", out.Priority)

	require.Len(t, notifier.sent, 1, "exactamente un escalamiento")
	n := notifier.sent[0]
	assert.Equal(t, "owner@store.com", n.To)
	assert.Equal(t, "URGENT: Reorder Request", n.Subject)
	assert.Equal(t, "Urgent reorder needed for Titos Vodka", n.Body)
	assert.Equal(t, ports.ChannelSMS, n.Channel)
}

// Prioridad Medium (o la omitida, que cae a Medium) no escala.
func TestReorder_PrioridadMediaNoEscala(t *testing.T) {
	uc, notifier := newReorderUseCase(t)

	out, err := uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{
		ProductName: "Lagunitas IPA",
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Medium", out.Priority, "sin prioridad explícita cae a Medium")
	assert.Empty(t, notifier.sent)
}

func TestReorder_SubmitValidacion(t *testing.T) {
	uc, _ := newReorderUseCase(t)

	_, err := uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "producto vacío")

	_, err = uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{ProductName: "Josh Cabernet", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")

	_, err = uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{ProductName: "Josh Cabernet", Quantity: 2, Priority: "Critical"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "prioridad desconocida")
}

// Las transiciones no tienen guardas: retroceder de Restocked a Pending vale.
func TestReorder_AdvancePermiteRetroceso(t *testing.T) {
	uc, _ := newReorderUseCase(t)

	created, err := uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{
		ProductName: "Kim Crawford Sauvignon Blanc",
		Quantity:    6,
	})
	require.NoError(t, err)

	out, err := uc.Advance(context.Background(), created.ID, entity.ReorderRestocked)
	require.NoError(t, err)
	assert.Equal(t, "Restocked", out.Status, "saltar directo a Restocked es válido")

	out, err = uc.Advance(context.Background(), created.ID, entity.ReorderPending)
	require.NoError(t, err)
	assert.Equal(t, "Pending", out.Status, "retroceder corrige errores de captura")
}

func TestReorder_AdvanceEstadoInvalido(t *testing.T) {
	uc, _ := newReorderUseCase(t)

	created, err := uc.Submit(context.Background(), "u3", dto.CreateReorderRequest{
		ProductName: "Casamigos Blanco",
		Quantity:    4,
	})
	require.NoError(t, err)

	_, err = uc.Advance(context.Background(), created.ID, entity.ReorderStatus("Shipped"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Avanzar un id desconocido falla sin crear ninguna solicitud fantasma.
func TestReorder_AdvanceIDDesconocido(t *testing.T) {
	uc, _ := newReorderUseCase(t)

	_, err := uc.Advance(context.Background(), "no-such-id", entity.ReorderOrdered)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
