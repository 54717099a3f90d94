package ports

import "context"

// Roles de los turnos de conversación que entiende el proveedor de generación.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatTurn un turno de la conversación. El asistente no guarda estado de
// conversación en el servidor: el historial completo se reenvía en cada llamada.
type ChatTurn struct {
	Role string // "user" | "model"
	Text string
}

// LLMService define el puerto de salida hacia el proveedor externo de
// generación de texto. Cualquier adaptador (Gemini, mock) debe implementarlo.
// La credencial viaja por llamada porque puede ingresarse y persistirse en
// caliente; el adaptador no debe tocar la red hasta validarla.
type LLMService interface {
	GenerateChat(ctx context.Context, apiKey, systemInstruction string, turns []ChatTurn) (string, error)
}
