package handlers

import (
	"errors"
	"net/http"

	"reabilitepro/middleware"
	"reabilitepro/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the derived conversation list and message history.
type ChatHandler struct {
	Chat chat.Service
}

func NewChatHandler(chatSvc chat.Service) *ChatHandler {
	return &ChatHandler{Chat: chatSvc}
}

// ConversationsHandler handles GET /api/chat/conversations.
func (h *ChatHandler) ConversationsHandler(c *gin.Context) {
	conversations, err := h.Chat.Conversations(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		zap.L().Error("Failed to derive conversations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// SendHandler handles POST /api/chat/messages.
func (h *ChatHandler) SendHandler(c *gin.Context) {
	var req chat.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SenderID = c.GetString(middleware.CtxUserID)

	msg, err := h.Chat.Send(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, chat.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			zap.L().Error("Failed to send message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// HistoryHandler handles GET /api/chat/conversations/:id/messages.
func (h *ChatHandler) HistoryHandler(c *gin.Context) {
	messages, err := h.Chat.History(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, chat.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("Failed to load message history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
