// Package assistant orquesta el asistente de chat: arma el contexto de
// grounding, resuelve la credencial y delega la generación al proveedor
// externo de texto.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/domain"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// systemInstruction restringe al modelo: citar departamentos, consultar el
// catálogo y rechazar con la frase fija cuando el contexto no alcanza.
const systemInstruction = `You are an expert Retail Manager AI Assistant for a liquor store.
You have access to the store's Standard Operating Procedures (SOPs) and Product Catalog.
RULES:
1. Always cite the Department name if you use info from an SOP.
2. If the user asks about a product, check the product catalog.
3. If the answer is NOT in the provided context, say "I don't see that in the handbook. Please ask a manager." Do not guess.
4. Be concise and professional.
`

// Timeout de cada llamada al LLM. Las respuestas de chat pueden demorar varios
// segundos; sin reintentos: un fallo se reporta en línea y la conversación sigue.
const generateTimeout = 30 * time.Second

// AssistantUseCase capa de consulta del asistente.
type AssistantUseCase struct {
	llm      ports.LLMService
	provider ports.ContextProvider
	settings repository.SettingsRepository
	envKey   string // fallback de credencial vía configuración
}

// NewAssistantUseCase construye el caso de uso. envKey puede ser "" si la
// credencial solo se gestiona en caliente.
func NewAssistantUseCase(
	llm ports.LLMService,
	provider ports.ContextProvider,
	settings repository.SettingsRepository,
	envKey string,
) *AssistantUseCase {
	return &AssistantUseCase{llm: llm, provider: provider, settings: settings, envKey: envKey}
}

// Answer responde la consulta con el historial completo reenviado. Si no hay
// credencial configurada falla con domain.ErrAPIKeyMissing antes de cualquier
// llamada de red, para que la interfaz pueda pedir una clave y reintentar sin
// perder la conversación.
func (uc *AssistantUseCase) Answer(ctx context.Context, in dto.ChatRequest) (string, error) {
	if in.Query == "" {
		return "", domain.ErrInvalidInput
	}

	apiKey, err := uc.resolveKey(ctx)
	if err != nil {
		return "", err
	}
	if apiKey == "" {
		return "", domain.ErrAPIKeyMissing
	}

	grounding, err := uc.provider.BuildContext(in.Query)
	if err != nil {
		return "", fmt.Errorf("armar contexto: %w", err)
	}

	turns := make([]ports.ChatTurn, 0, len(in.History)+1)
	for _, m := range in.History {
		turns = append(turns, ports.ChatTurn{Role: m.Role, Text: m.Content})
	}
	turns = append(turns, ports.ChatTurn{
		Role: ports.ChatRoleUser,
		Text: fmt.Sprintf("%s\n\nUSER QUESTION: %s", grounding, in.Query),
	})

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := uc.llm.GenerateChat(ctx, apiKey, systemInstruction, turns)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// SetCredential persiste la clave del asistente en el slot de settings.
func (uc *AssistantUseCase) SetCredential(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return domain.ErrInvalidInput
	}
	return uc.settings.Set(ctx, repository.SettingAPIKey, apiKey)
}

// HasCredential indica si hay una clave utilizable (slot o configuración).
func (uc *AssistantUseCase) HasCredential(ctx context.Context) bool {
	key, err := uc.resolveKey(ctx)
	return err == nil && key != ""
}

func (uc *AssistantUseCase) resolveKey(ctx context.Context) (string, error) {
	key, err := uc.settings.Get(ctx, repository.SettingAPIKey)
	if err != nil {
		return "", fmt.Errorf("leer credencial: %w", err)
	}
	if key == "" {
		key = uc.envKey
	}
	return key, nil
}
