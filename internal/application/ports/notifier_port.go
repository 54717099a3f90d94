package ports

import "context"

// Channel canal de entrega de la notificación.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelBoth  Channel = "both"
)

// Notification payload mínimo que entiende el proveedor de mensajería.
type Notification struct {
	To      string
	Subject string
	Body    string
	Channel Channel
}

// Notifier define el puerto de salida hacia el proveedor de email/SMS.
// Las llamadas son fire-and-observe: sin reintentos ni timeout propio; un
// fallo se registra y nunca se muestra al usuario final.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
