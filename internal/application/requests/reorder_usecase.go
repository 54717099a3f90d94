package requests

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
	"github.com/jhoicas/storeops-api/pkg/logger"
)

// ReorderConfig destino de escalamiento para reposiciones urgentes.
type ReorderConfig struct {
	OwnerAddress string // recibe el SMS de escalamiento cuando la prioridad es High
}

// ReorderUseCase ciclo de vida de las solicitudes de reposición.
type ReorderUseCase struct {
	repo     repository.ReorderRepository
	notifier ports.Notifier
	log      *logger.Logger
	cfg      ReorderConfig
	now      func() time.Time
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(
	repo repository.ReorderRepository,
	notifier ports.Notifier,
	log *logger.Logger,
	cfg ReorderConfig,
) *ReorderUseCase {
	return &ReorderUseCase{repo: repo, notifier: notifier, log: log, cfg: cfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReorderUseCase) WithClock(now func() time.Time) *ReorderUseCase {
	uc.now = now
	return uc
}

// Submit crea la solicitud en Pending. Si la prioridad es High se escala por
// el canal de mayor urgencia (SMS) a la dirección del dueño.
func (uc *ReorderUseCase) Submit(ctx context.Context, requesterID string, in dto.CreateReorderRequest) (*dto.ReorderResponse, error) {
	if in.ProductName == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	priority := entity.TaskPriority(in.Priority)
	if in.Priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}

	req := &entity.ReorderRequest{
		ID:          uuid.New().String(),
		UserID:      requesterID,
		ProductName: in.ProductName,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Priority:    priority,
		Status:      entity.ReorderPending,
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}

	if priority == entity.PriorityHigh {
		uc.notify(ctx, ports.Notification{
			To:      uc.cfg.OwnerAddress,
			Subject: "URGENT: Reorder Request",
			Body:    fmt.Sprintf("Urgent reorder needed for %s", req.ProductName),
			Channel: ports.ChannelSMS,
		})
	}

	return toReorderResponse(req), nil
}

// Advance fija el estado de la reposición. Cualquiera de los tres estados se
// acepta en cualquier orden: retroceder corrige errores de captura.
func (uc *ReorderUseCase) Advance(ctx context.Context, id string, status entity.ReorderStatus) (*dto.ReorderResponse, error) {
	if !entity.ValidReorderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound // id desconocido: no se crea nada
	}

	req.Status = status
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return toReorderResponse(req), nil
}

// List devuelve todas las solicitudes.
func (uc *ReorderUseCase) List() ([]dto.ReorderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReorderResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReorderResponse(r))
	}
	return out, nil
}

func (uc *ReorderUseCase) notify(ctx context.Context, n ports.Notification) {
	if err := uc.notifier.Send(ctx, n); err != nil {
		uc.log.Warn().Err(err).Str("to", n.To).Msg("notificación fallida")
	}
}

func toReorderResponse(r *entity.ReorderRequest) *dto.ReorderResponse {
	return &dto.ReorderResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductName: r.ProductName,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Reason:      r.Reason,
		Priority:    string(r.Priority),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}
