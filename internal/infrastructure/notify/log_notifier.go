// Package notify implementa el gateway de notificaciones. La implementación
// actual es un stub que registra el envío con una demora simulada; un binding
// de producción llamaría a un proveedor de email (SendGrid) y/o SMS (Twilio).
package notify

import (
	"context"
	"time"

	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/pkg/logger"
)

// LogNotifier stub de mensajería: loguea y simula latencia de red.
type LogNotifier struct {
	log   *logger.Logger
	delay time.Duration
}

var _ ports.Notifier = (*LogNotifier)(nil)

// NewLogNotifier construye el stub. delay simula la latencia del proveedor
// (0 en tests).
func NewLogNotifier(log *logger.Logger, delay time.Duration) *LogNotifier {
	return &LogNotifier{log: log, delay: delay}
}

/// Send registra la notificación. Nunca falla: el contrato del gateway es
// fire-and-observe y el dominio no depende del resultado.
func (n *LogNotifier) Send(ctx context.Context, msg ports.Notification) error {
	n.log.Info().
		Str("to", msg.To).
		Str("channel", string(msg.Channel)).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("enviando notificación (stub)")

	if n.delay > 0 {
		select {
		case <-time.After(n.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
