package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brain-tutor/internal/service"
)

// ConversationHandler mantiene dependencias para los endpoints del tutor.
type ConversationHandler struct {
	logger        *zap.Logger
	tutor         *service.TutorService
	conversations *service.ConversationService
	rateLimiter   service.ChatRateLimiter
}

// NewConversationHandler crea una instancia con las dependencias necesarias.
func NewConversationHandler(
	logger *zap.Logger,
	tutor *service.TutorService,
	conversations *service.ConversationService,
	rateLimiter service.ChatRateLimiter,
) *ConversationHandler {
	return &ConversationHandler{
		logger:        logger,
		tutor:         tutor,
		conversations: conversations,
		rateLimiter:   rateLimiter,
	}
}

// PostMessage maneja POST /conversation.
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		Message string `json:"message"`
		ChatID  string `json:"chat_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid conversation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.rateLimiter != nil && !h.rateLimiter.Allow(claims.UserID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, slow down"})
		return
	}

	reply, err := h.tutor.Chat(c.Request.Context(), claims.UserID, req.ChatID, req.Message)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message cannot be empty"})
		return
	case errors.Is(err, service.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message too long, maximum 2000 characters allowed"})
		return
	case errors.Is(err, service.ErrChatAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "chat not found or access denied"})
		return
	case err != nil:
		h.logger.Error("tutor chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// GetConversation maneja GET /conversation. Con chat_id devuelve mensajes
// paginados; sin chat_id, los chats recientes del usuario.
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	chatID := c.Query("chat_id")
	if chatID == "" {
		limit := intQuery(c, "limit", 20)
		chats, err := h.conversations.ListChats(c.Request.Context(), claims.UserID, limit)
		if err != nil {
			h.logger.Error("list chats failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch chats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"chats": chats})
		return
	}

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 50)

	result, err := h.conversations.ListMessages(c.Request.Context(), claims.UserID, chatID, page, pageSize)
	if errors.Is(err, service.ErrChatAccessDenied) {
		c.JSON(http.StatusForbidden, gin.H{"error": "chat not found or access denied"})
		return
	}
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch messages"})
		return
	}

	type messageView struct {
		ID        string `json:"id"`
		Role      string `json:"role"`
		Content   string `json:"content"`
		CreatedAt string `json:"created_at"`
	}
	views := make([]messageView, 0, len(result.Messages))
	for _, msg := range result.Messages {
		views = append(views, messageView{
			ID:        msg.ID,
			Role:      msg.Role(),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": views,
		"chat_id":  chatID,
		"pagination": gin.H{
			"page":      result.Page,
			"page_size": result.PageSize,
			"total":     result.Total,
			"has_more":  result.HasMore,
		},
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
