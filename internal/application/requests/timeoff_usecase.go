// Package requests gestiona el ciclo de vida de las solicitudes del personal:
// tiempo libre y reposición de producto. Las transiciones de estado disparan
// notificaciones fire-and-observe; un fallo de mensajería se registra y no
// bloquea la operación.
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

// TimeOffConfig destinos fijos de notificación.
type TimeOffConfig struct {
	ManagerEmail string // operador que recibe cada solicitud nueva
}

// TimeOffUseCase ciclo de vida de las solicitudes de tiempo libre.
type TimeOffUseCase struct {
	repo     repository.TimeOffRepository
	userRepo repository.UserRepository
	notifier ports.Notifier
	log      *logger.Logger
	cfg      TimeOffConfig
	now      func() time.Time
}

// NewTimeOffUseCase construye el caso de uso.
func NewTimeOffUseCase(
	repo repository.TimeOffRepository,
	userRepo repository.UserRepository,
	notifier ports.Notifier,
	log *logger.Logger,
	cfg TimeOffConfig,
) *TimeOffUseCase {
	return &TimeOffUseCase{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *TimeOffUseCase) WithClock(now func() time.Time) *TimeOffUseCase {
	uc.now = now
	return uc
}

// Submit crea la solicitud en Pending y avisa al operador fijo.
func (uc *TimeOffUseCase) Submit(ctx context.Context, requesterID string, in dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error) {
	if !entity.ValidTimeOffType(entity.TimeOffType(in.Type)) {
		return nil, domain.ErrInvalidInput
	}
	requester, err := uc.userRepo.GetByID(requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, domain.ErrUserNotFound
	}

	req := &entity.TimeOffRequest{
		ID:        uuid.New().String(),
		UserID:    requesterID,
		Type:      entity.TimeOffType(in.Type),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Status:    entity.RequestPending,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}

	uc.notify(ctx, ports.Notification{
		To:      uc.cfg.ManagerEmail,
		Subject: "New Time Off Request",
		Body:    fmt.Sprintf("%s requested time off.", requester.Name),
		Channel: ports.ChannelEmail,
	})

	return toTimeOffResponse(req), nil
}

// Decide fija el resultado de la solicitud y avisa al solicitante por su
// dirección registrada. Una re-decisión sobrescribe la anterior: no hay guard
// de terminalidad y se prefiere la permisividad del flujo original.
func (uc *TimeOffUseCase) Decide(ctx context.Context, id string, status entity.RequestStatus) (*dto.TimeOffResponse, error) {
	if status != entity.RequestApproved && status != entity.RequestRejected {
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

	requester, err := uc.userRepo.GetByID(req.UserID)
	if err != nil {
		return nil, err
	}
	if requester != nil && requester.Email != "" {
		uc.notify(ctx, ports.Notification{
			To:      requester.Email,
			Subject: fmt.Sprintf("Time Off %s", status),
			Body:    fmt.Sprintf("Your request has been %s.", status),
			Channel: ports.ChannelBoth,
		})
	}

	return toTimeOffResponse(req), nil
}

// List devuelve todas las solicitudes.
func (uc *TimeOffUseCase) List() ([]dto.TimeOffResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeOffResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toTimeOffResponse(r))
	}
	return out, nil
}

func (uc *TimeOffUseCase) notify(ctx context.Context, n ports.Notification) {
	if err := uc.notifier.Send(ctx, n); err != nil {
		uc.log.Warn().Err(err).Str("to", n.To).Msg("notificación fallida")
	}
}

func toTimeOffResponse(r *entity.TimeOffRequest) *dto.TimeOffResponse {
	return &dto.TimeOffResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      string(r.Type),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
