package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storeops-api/internal/application/assistant"
	"github.com/jhoicas/storeops-api/internal/application/dto"
	"github.com/jhoicas/storeops-api/internal/domain"
)

// AssistantHandler maneja el chat del asistente de la tienda.
type AssistantHandler struct {
	uc *assistant.AssistantUseCase
}

// NewAssistantHandler construye el handler del asistente.
func NewAssistantHandler(uc *assistant.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat godoc
// @Summary      Preguntar al asistente
// @Description  Responde usando los SOPs de los departamentos y el catálogo de
//               productos como contexto. El historial completo viaja en cada
//               llamada; el servidor no guarda estado de conversación.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "query e historial previo"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	reply, err := h.uc.Answer(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrAPIKeyMissing) {
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{
				Code: "API_KEY_MISSING", Message: "configura la clave de API del asistente primero",
			})
		}
		// Cualquier otro fallo viene del proveedor de generación (red, cuota,
		// respuesta malformada) y se reporta como gateway.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_ERROR", Message: "el asistente no está disponible; intenta de nuevo",
		})
	}
	return c.JSON(dto.ChatResponse{Reply: reply})
}

// SetCredential godoc
// @Summary      Configurar la clave de API del asistente
// @Description  La clave se guarda en el slot de settings y aplica de inmediato,
//               sin reiniciar el servidor.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCredentialRequest  true  "api_key"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/credential [put]
func (h *AssistantHandler) SetCredential(c *fiber.Ctx) error {
	var in dto.SetCredentialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.APIKey) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "api_key es requerido"})
	}
	if err := h.uc.SetCredential(c.Context(), in.APIKey); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CredentialStatus godoc
// @Summary      Consultar si el asistente tiene clave configurada
// @Description  Nunca devuelve la clave, solo si existe.
// @Tags         assistant
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/assistant/credential [get]
func (h *AssistantHandler) CredentialStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"configured": h.uc.HasCredential(c.Context())})
}
