package dto

// ChatMessage un turno previo de la conversación con el asistente.
type ChatMessage struct {
	Role    string `json:"role"` // user | model
	Content string `json:"content"`
}

// ChatRequest consulta del asistente. El historial completo viaja en cada
// llamada: el servidor no guarda estado de conversación.
type ChatRequest struct {
	Query   string        `json:"query" validate:"required"`
	History []ChatMessage `json:"history"`
}

// ChatResponse respuesta generada.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// SetCredentialRequest entrada para persistir la clave de API del asistente.
type SetCredentialRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}
