package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/crewboard/crewboard-back/pkg/api/errors"
	"github.com/crewboard/crewboard-back/pkg/chat"
	"github.com/crewboard/crewboard-back/pkg/metrics"
	"github.com/crewboard/crewboard-back/pkg/models"
)

// ChatHandler serves the public concierge endpoint.
type ChatHandler struct {
	chat     *chat.Service
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewChatHandler creates the chat handler. metrics may be nil in tests.
func NewChatHandler(chatSvc *chat.Service, m *metrics.Metrics) *ChatHandler {
	return &ChatHandler{
		chat:     chatSvc,
		metrics:  m,
		validate: validator.New(),
	}
}

// Ask answers one visitor question. Visitors are identified by client IP.
// POST /api/chat
func (h *ChatHandler) Ask(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, "message is required")
	}

	answer, err := h.chat.Ask(c.Request().Context(), c.RealIP(), req.Message)
	if errors.Is(err, chat.ErrRateLimited) {
		return apierrors.TooManyRequests(c, "too many questions, please wait a moment")
	}
	if err != nil {
		return apierrors.Internal(c, err)
	}

	if h.metrics != nil {
		h.metrics.ChatRequests.Inc()
	}
	return c.JSON(http.StatusOK, models.ChatResponse{Answer: answer})
}
