package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/domain"
	"github.com/pgaray/landing-api/internal/service"
)

// ChatHandler handles HTTP requests for the site assistant
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat godoc
// @Summary      Ask the site assistant
// @Description  Forwards one message (1-1000 characters) to the configured language model
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ChatRequest  true  "Chat message"
// @Success      200  {object}  domain.ChatResponse
// @Failure      400  {object}  common.ErrorBody
// @Failure      429  {object}  common.ErrorBody
// @Failure      500  {object}  common.ErrorBody
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Reply(c.Request.Context(), req.Message)
	if errors.Is(err, common.ErrInvalidInput) {
		common.ErrorResponse(c, http.StatusBadRequest, "Message must not be blank", err)
		return
	}
	if err != nil {
		logFailure(c, err, "chat reply")
		common.ErrorResponse(c, http.StatusInternalServerError, "Chat error", err)
		return
	}

	common.SuccessResponse(c, http.StatusOK, resp)
}
