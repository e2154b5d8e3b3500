package http

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/llm"
	"brain-tutor/internal/repository"
	"brain-tutor/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Repositorios en memoria para armar el stack completo sin base de datos.

type stubUserRepo struct {
	users map[string]domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (r *stubUserRepo) UpdateDominantSide(_ context.Context, id, dominantSide string) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.DominantSide = dominantSide
	r.users[id] = user
	return nil
}

type stubChatRepo struct {
	chats map[string]domain.Chat
}

func (r *stubChatRepo) Create(_ context.Context, chat domain.Chat) error {
	r.chats[chat.ID] = chat
	return nil
}

func (r *stubChatRepo) GetByID(_ context.Context, id string) (domain.Chat, error) {
	chat, ok := r.chats[id]
	if !ok {
		return domain.Chat{}, pgx.ErrNoRows
	}
	return chat, nil
}

func (r *stubChatRepo) ListByUserID(_ context.Context, userID string, limit int) ([]domain.Chat, error) {
	var chats []domain.Chat
	for _, chat := range r.chats {
		if chat.UserID == userID {
			chats = append(chats, chat)
		}
	}
	sort.SliceStable(chats, func(i, j int) bool { return chats[i].CreatedAt.After(chats[j].CreatedAt) })
	if limit > 0 && len(chats) > limit {
		chats = chats[:limit]
	}
	return chats, nil
}

type stubMessageRepo struct {
	msgs []domain.Message
}

func (r *stubMessageRepo) Create(_ context.Context, message domain.Message) error {
	r.msgs = append(r.msgs, message)
	return nil
}

func (r *stubMessageRepo) ListByChatID(_ context.Context, chatID string, limit, offset int) ([]domain.Message, error) {
	var filtered []domain.Message
	for _, msg := range r.msgs {
		if msg.ChatID == chatID {
			filtered = append(filtered, msg)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) })
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *stubMessageRepo) CountByChatID(_ context.Context, chatID string) (int, error) {
	count := 0
	for _, msg := range r.msgs {
		if msg.ChatID == chatID {
			count++
		}
	}
	return count, nil
}

type stubAssessmentRepo struct {
	byUser map[string]domain.Assessment
}

func (r *stubAssessmentRepo) Create(_ context.Context, assessment domain.Assessment) (bool, error) {
	if _, ok := r.byUser[assessment.UserID]; ok {
		return false, nil
	}
	r.byUser[assessment.UserID] = assessment
	return true, nil
}

func (r *stubAssessmentRepo) GetByUserID(_ context.Context, userID string) (domain.Assessment, error) {
	assessment, ok := r.byUser[userID]
	if !ok {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return assessment, nil
}

var (
	_ repository.UserRepository       = (*stubUserRepo)(nil)
	_ repository.ChatRepository       = (*stubChatRepo)(nil)
	_ repository.MessageRepository    = (*stubMessageRepo)(nil)
	_ repository.AssessmentRepository = (*stubAssessmentRepo)(nil)
)

// apiFixture arma el stack HTTP completo sobre repos en memoria.
type apiFixture struct {
	router      *gin.Engine
	jwtSvc      *service.JWTService
	users       *stubUserRepo
	chats       *stubChatRepo
	messages    *stubMessageRepo
	assessments *stubAssessmentRepo
	llmClient   *llm.MockClient
	rateLimiter service.ChatRateLimiter
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		users:       &stubUserRepo{users: make(map[string]domain.User)},
		chats:       &stubChatRepo{chats: make(map[string]domain.Chat)},
		messages:    &stubMessageRepo{},
		assessments: &stubAssessmentRepo{byUser: make(map[string]domain.Assessment)},
		llmClient:   &llm.MockClient{Response: "model reply"},
	}
	f.jwtSvc = service.NewJWTService("test-secret", time.Minute, time.Hour)
	f.rateLimiter = service.NewMemoryChatRateLimiter(time.Minute, 100)
	f.rebuild()
	return f
}

// rebuild rearma el router con el estado actual de los campos del fixture.
func (f *apiFixture) rebuild() {
	logger := zap.NewNop()
	conversations := service.NewConversationService(f.chats, f.messages)
	resolver := service.NewDominanceResolver(logger, f.users)
	tutor := service.NewTutorService(logger, f.llmClient, conversations, resolver, time.Second)
	assessmentSvc := service.NewAssessmentService(logger, f.assessments, f.users)
	userSvc := service.NewUserService(logger, f.users)

	f.router = NewRouter(
		logger,
		f.jwtSvc,
		NewUserHandler(logger, userSvc, f.jwtSvc),
		NewConversationHandler(logger, tutor, conversations, f.rateLimiter),
		NewAssessmentHandler(logger, assessmentSvc),
		NewSelfTestHandler(logger),
	)
}

// token registra al usuario en el repo y emite un access token valido.
func (f *apiFixture) token(t *testing.T, user domain.User) string {
	t.Helper()
	f.users.users[user.ID] = user
	pair, err := f.jwtSvc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return pair.AccessToken
}
