package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/repository"
)

var (
	// ErrChatAccessDenied cubre tanto chat inexistente como chat ajeno:
	// el caller no puede distinguirlos y asi no filtramos existencia.
	ErrChatAccessDenied = errors.New("chat not found or access denied")

	ErrConversationNotConfigured = errors.New("conversation service not configured")
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ConversationService administra el ciclo de vida chat/mensaje:
// creacion perezosa, verificacion de propiedad, orden y paginacion.
type ConversationService struct {
	chats    repository.ChatRepository
	messages repository.MessageRepository
}

func NewConversationService(chats repository.ChatRepository, messages repository.MessageRepository) *ConversationService {
	return &ConversationService{chats: chats, messages: messages}
}

// EnsureChat devuelve un chat del usuario: crea uno nuevo si chatID viene
// vacio, o verifica propiedad del existente. Todo acceso a un chat ajeno
// o inexistente devuelve ErrChatAccessDenied.
func (s *ConversationService) EnsureChat(ctx context.Context, userID, chatID string) (domain.Chat, error) {
	if s == nil || s.chats == nil {
		return domain.Chat{}, ErrConversationNotConfigured
	}

	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		chat := domain.Chat{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.chats.Create(ctx, chat); err != nil {
			return domain.Chat{}, fmt.Errorf("create chat: %w", err)
		}
		return chat, nil
	}

	chat, err := s.chats.GetByID(ctx, chatID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Chat{}, ErrChatAccessDenied
	}
	if err != nil {
		return domain.Chat{}, fmt.Errorf("get chat: %w", err)
	}
	if chat.UserID != userID {
		return domain.Chat{}, ErrChatAccessDenied
	}
	return chat, nil
}

// AppendMessage inserta un mensaje al final del chat. El contenido llega
// ya validado y recortado; los mensajes nunca se editan ni se borran.
func (s *ConversationService) AppendMessage(ctx context.Context, chatID, authorID, content string) (domain.Message, error) {
	if s == nil || s.messages == nil {
		return domain.Message{}, ErrConversationNotConfigured
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// MessagePage es una pagina de mensajes en orden de creacion ascendente.
type MessagePage struct {
	Messages []domain.Message
	Page     int
	PageSize int
	Total    int
	HasMore  bool
}

// ListMessages pagina los mensajes de un chat del usuario, verificando
// propiedad antes de leer.
func (s *ConversationService) ListMessages(ctx context.Context, userID, chatID string, page, pageSize int) (MessagePage, error) {
	if s == nil || s.messages == nil {
		return MessagePage{}, ErrConversationNotConfigured
	}
	if _, err := s.EnsureChat(ctx, userID, chatID); err != nil {
		return MessagePage{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	messages, err := s.messages.ListByChatID(ctx, chatID, pageSize, offset)
	if err != nil {
		return MessagePage{}, fmt.Errorf("list messages: %w", err)
	}
	total, err := s.messages.CountByChatID(ctx, chatID)
	if err != nil {
		return MessagePage{}, fmt.Errorf("count messages: %w", err)
	}

	return MessagePage{
		Messages: messages,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  page*pageSize < total,
	}, nil
}

// RecentHistory devuelve los ultimos n mensajes del chat en orden
// cronologico, para acotar el contexto del prompt.
func (s *ConversationService) RecentHistory(ctx context.Context, chatID string, n int) ([]domain.Message, error) {
	if s == nil || s.messages == nil {
		return nil, ErrConversationNotConfigured
	}
	if n <= 0 {
		n = maxHistoryMessages
	}
	total, err := s.messages.CountByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	offset := 0
	if total > n {
		offset = total - n
	}
	return s.messages.ListByChatID(ctx, chatID, n, offset)
}

// ListChats lista los chats del usuario, el mas reciente primero.
func (s *ConversationService) ListChats(ctx context.Context, userID string, limit int) ([]domain.Chat, error) {
	if s == nil || s.chats == nil {
		return nil, ErrConversationNotConfigured
	}
	return s.chats.ListByUserID(ctx, userID, limit)
}
