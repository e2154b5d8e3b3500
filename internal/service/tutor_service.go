package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/llm"
)

const (
	// MaxMessageChars acota el largo de un mensaje entrante, en runas.
	MaxMessageChars = 2000

	SourceModel    = "model"
	SourceFallback = "fallback"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message too long")

	ErrTutorNotConfigured = errors.New("tutor service not configured")
)

// TutorReply es la respuesta completa del motor, con metadatos de politica.
type TutorReply struct {
	Text          string               `json:"reply"`
	ChatID        string               `json:"chat_id"`
	UserMessageID string               `json:"user_message_id"`
	ReplyID       string               `json:"reply_id,omitempty"`
	Dominance     domain.DominanceType `json:"dominance"`
	Subject       domain.Subject       `json:"subject"`
	Source        string               `json:"source"`
	Strategies    []string             `json:"strategies,omitempty"`
}

// TutorService orquesta el flujo completo de un turno de conversacion:
// resolver dominancia, clasificar materia, componer prompt, invocar el
// modelo con degradacion determinista, y persistir ambos turnos.
type TutorService struct {
	logger        *zap.Logger
	llmClient     llm.Client
	conversations *ConversationService
	resolver      *DominanceResolver
	promptBuilder TutorPromptBuilder
	fallback      FallbackGenerator
	modelTimeout  time.Duration
}

func NewTutorService(
	logger *zap.Logger,
	llmClient llm.Client,
	conversations *ConversationService,
	resolver *DominanceResolver,
	modelTimeout time.Duration,
) *TutorService {
	if modelTimeout <= 0 {
		modelTimeout = 30 * time.Second
	}
	return &TutorService{
		logger:        logger,
		llmClient:     llmClient,
		conversations: conversations,
		resolver:      resolver,
		modelTimeout:  modelTimeout,
	}
}

// Chat procesa un mensaje entrante y devuelve la respuesta del tutor.
// Los fallos del modelo se recuperan localmente via fallback; el unico
// camino critico de persistencia es el mensaje del propio usuario.
func (s *TutorService) Chat(ctx context.Context, userID, chatID, message string) (TutorReply, error) {
	if s == nil || s.conversations == nil {
		return TutorReply{}, ErrTutorNotConfigured
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return TutorReply{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageChars {
		return TutorReply{}, ErrMessageTooLong
	}

	chat, err := s.conversations.EnsureChat(ctx, userID, chatID)
	if err != nil {
		return TutorReply{}, err
	}

	userMsg, err := s.conversations.AppendMessage(ctx, chat.ID, userID, message)
	if err != nil {
		return TutorReply{}, fmt.Errorf("persist user message: %w", err)
	}

	// El historial es contexto, no requisito: si falla seguimos sin el.
	history, err := s.conversations.RecentHistory(ctx, chat.ID, maxHistoryMessages)
	if err != nil {
		s.logger.Warn("history fetch failed, continuing without context",
			zap.String("chat_id", chat.ID), zap.Error(err))
		history = nil
	}

	dominance := s.resolver.Resolve(ctx, userID)
	subject := ClassifySubject(message)
	policy := PolicyFor(dominance, subject)

	prompt := s.promptBuilder.BuildTutorPrompt(policy, subject, dominance, message, history)

	reply, source := s.generate(ctx, prompt, policy, message, dominance, subject)

	// Guardar la respuesta del tutor es best-effort: la respuesta ya
	// existe y el usuario debe recibirla aunque el insert falle.
	var replyID string
	assistantMsg, err := s.conversations.AppendMessage(ctx, chat.ID, domain.AssistantAuthorID, reply)
	if err != nil {
		s.logger.Error("persist assistant message failed",
			zap.String("chat_id", chat.ID), zap.Error(err))
	} else {
		replyID = assistantMsg.ID
	}

	return TutorReply{
		Text:          reply,
		ChatID:        chat.ID,
		UserMessageID: userMsg.ID,
		ReplyID:       replyID,
		Dominance:     dominance,
		Subject:       subject,
		Source:        source,
		Strategies:    policy.Strategies,
	}, nil
}

// generate invoca el modelo remoto y degrada al generador determinista
// ante cualquier fallo: credencial ausente, error de red o de proveedor,
// timeout o texto vacio. El caller no distingue causas.
func (s *TutorService) generate(ctx context.Context, prompt string, policy Policy, message string, dominance domain.DominanceType, subject domain.Subject) (string, string) {
	if s.llmClient != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
		defer cancel()

		text, err := s.llmClient.Generate(genCtx, prompt, policy.Temperature)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, SourceModel
		}
		s.logger.Warn("model generation failed, using fallback",
			zap.String("dominance", string(dominance)),
			zap.String("subject", string(subject)),
			zap.Error(err),
		)
	}
	return s.fallback.Reply(message, dominance, subject, policy), SourceFallback
}
