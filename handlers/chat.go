package handlers

import (
	"context"
	"errors"
	"net/http"

	"vibenav/models"
	ai "vibenav/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatReplier answers one chat turn.
type ChatReplier interface {
	Reply(ctx context.Context, req models.ChatRequest) (string, error)
}

type ChatHandler struct {
	Assistant ChatReplier
}

func NewChatHandler(assistant ChatReplier) *ChatHandler {
	return &ChatHandler{Assistant: assistant}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.Assistant.Reply(c.Request.Context(), req)
	switch {
	case errors.Is(err, ai.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Error("Chat requested without a configured model")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server mis-configuration: GEMINI_API_KEY is missing."})
		return
	case err != nil:
		logger.Error("Chat reply failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply, SessionID: req.SessionID})
}
