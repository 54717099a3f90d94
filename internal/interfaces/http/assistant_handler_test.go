package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storeops-api/internal/application/assistant"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/domain/entity"
	"github.com/jhoicas/storeops-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/storeops-api/internal/interfaces/http"
)

// fakeChatService devuelve una respuesta o error fijo.
type fakeChatService struct {
	reply string
	err   error
}

func (s *fakeChatService) GenerateChat(_ context.Context, _, _ string, _ []ports.ChatTurn) (string, error) {
	return s.reply, s.err
}

func buildAssistantApp(llm ports.LLMService, envKey string) *fiber.App {
	depts := memory.NewDepartmentRepository([]entity.Department{
		{ID: "dept_beer", Name: "Beer Cave", Type: entity.DepartmentRetail, SOP: "Keep coolers cold."},
	})
	products := memory.NewProductRepository(nil)
	settings := memory.NewSettingsRepository()
	uc := assistant.NewAssistantUseCase(
		llm,
		assistant.NewKeywordContextProvider(depts, products),
		settings,
		envKey,
	)
	app := fiber.New()
	h := apphttp.NewAssistantHandler(uc)
	app.Post("/api/assistant/chat", h.Chat)
	app.Put("/api/assistant/credential", h.SetCredential)
	app.Get("/api/assistant/credential", h.CredentialStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Sin credencial el chat responde 412 con el código esperado por la interfaz.
func TestAssistantChat_SinCredencial_412(t *testing.T) {
	app := buildAssistantApp(&fakeChatService{reply: "ok"}, "")

	resp := postJSON(t, app, http.MethodPost, "/api/assistant/chat", dto.ChatRequest{Query: "hello"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "API_KEY_MISSING", out.Code)
}

// Un fallo del proveedor se reporta como 502, no como 500 genérico.
func TestAssistantChat_FalloDelProveedor_502(t *testing.T) {
	app := buildAssistantApp(&fakeChatService{err: errors.New("quota exceeded")}, "env-key")

	resp := postJSON(t, app, http.MethodPost, "/api/assistant/chat", dto.ChatRequest{Query: "hello"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "UPSTREAM_ERROR", out.Code)
}

// Guardar la credencial desbloquea el chat en la misma sesión.
func TestAssistantCredential_CicloCompleto(t *testing.T) {
	app := buildAssistantApp(&fakeChatService{reply: "All set."}, "")

	// Estado inicial: sin clave.
	resp := postJSON(t, app, http.MethodGet, "/api/assistant/credential", nil)
	var status map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.False(t, status["configured"])

	// Guardar la clave.
	resp = postJSON(t, app, http.MethodPut, "/api/assistant/credential", dto.SetCredentialRequest{APIKey: "key-123"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// El chat ahora responde.
	resp = postJSON(t, app, http.MethodPost, "/api/assistant/chat", dto.ChatRequest{Query: "hello"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "All set.", out.Reply)
}

func TestAssistantChat_QueryVacia_400(t *testing.T) {
	app := buildAssistantApp(&fakeChatService{reply: "ok"}, "env-key")

	resp := postJSON(t, app, http.MethodPost, "/api/assistant/chat", dto.ChatRequest{Query: "   "})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
