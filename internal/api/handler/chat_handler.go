package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arabshield/platform-api/internal/core/service"
)

type ChatHandler struct {
	faq *service.FAQService
}

func NewChatHandler(faq *service.FAQService) *ChatHandler {
	return &ChatHandler{faq: faq}
}

type chatRequest struct {
	Question string `json:"question" validate:"required"`
}

// Ask answers a free-text question from the FAQ rule table.
//
// @Summary      Ask the FAQ chat widget
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question"
// @Success      200   {object}  domain.FAQAnswer
// @Failure      400   {object}  map[string]string
// @Router       /chat/ask [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, h.faq.Answer(req.Question))
}
