package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/repository"
)

type memUserRepo struct {
	users     map[string]domain.User
	getErr    error
	updateErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	if m.getErr != nil {
		return domain.User{}, m.getErr
	}
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (m *memUserRepo) UpdateDominantSide(_ context.Context, id, dominantSide string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	user, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.DominantSide = dominantSide
	m.users[id] = user
	return nil
}

type memChatRepo struct {
	chats     map[string]domain.Chat
	createErr error
	getErr    error
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: make(map[string]domain.Chat)}
}

func (m *memChatRepo) Create(_ context.Context, chat domain.Chat) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.chats[chat.ID] = chat
	return nil
}

func (m *memChatRepo) GetByID(_ context.Context, id string) (domain.Chat, error) {
	if m.getErr != nil {
		return domain.Chat{}, m.getErr
	}
	chat, ok := m.chats[id]
	if !ok {
		return domain.Chat{}, pgx.ErrNoRows
	}
	return chat, nil
}

func (m *memChatRepo) ListByUserID(_ context.Context, userID string, limit int) ([]domain.Chat, error) {
	var chats []domain.Chat
	for _, chat := range m.chats {
		if chat.UserID == userID {
			chats = append(chats, chat)
		}
	}
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].CreatedAt.After(chats[j].CreatedAt)
	})
	if limit > 0 && len(chats) > limit {
		chats = chats[:limit]
	}
	return chats, nil
}

type memMessageRepo struct {
	msgs []domain.Message
	// failAuthor fuerza error de insert solo para ese autor.
	failAuthor string
	createErr  error
	listErr    error
}

func (m *memMessageRepo) Create(_ context.Context, message domain.Message) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.failAuthor != "" && message.AuthorID == m.failAuthor {
		return pgx.ErrTxClosed
	}
	m.msgs = append(m.msgs, message)
	return nil
}

func (m *memMessageRepo) ListByChatID(_ context.Context, chatID string, limit, offset int) ([]domain.Message, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var filtered []domain.Message
	for _, msg := range m.msgs {
		if msg.ChatID == chatID {
			filtered = append(filtered, msg)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (m *memMessageRepo) CountByChatID(_ context.Context, chatID string) (int, error) {
	if m.listErr != nil {
		return 0, m.listErr
	}
	count := 0
	for _, msg := range m.msgs {
		if msg.ChatID == chatID {
			count++
		}
	}
	return count, nil
}

type memAssessmentRepo struct {
	byUser    map[string]domain.Assessment
	createErr error
	// missOnce hace fallar la primera lectura para simular una carrera:
	// el check no ve la fila pero el insert ya conflictua.
	missOnce bool
}

func newMemAssessmentRepo() *memAssessmentRepo {
	return &memAssessmentRepo{byUser: make(map[string]domain.Assessment)}
}

func (m *memAssessmentRepo) Create(_ context.Context, assessment domain.Assessment) (bool, error) {
	if m.createErr != nil {
		return false, m.createErr
	}
	if _, ok := m.byUser[assessment.UserID]; ok {
		return false, nil
	}
	m.byUser[assessment.UserID] = assessment
	return true, nil
}

func (m *memAssessmentRepo) GetByUserID(_ context.Context, userID string) (domain.Assessment, error) {
	if m.missOnce {
		m.missOnce = false
		return domain.Assessment{}, pgx.ErrNoRows
	}
	assessment, ok := m.byUser[userID]
	if !ok {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return assessment, nil
}

var (
	_ repository.UserRepository       = (*memUserRepo)(nil)
	_ repository.ChatRepository       = (*memChatRepo)(nil)
	_ repository.MessageRepository    = (*memMessageRepo)(nil)
	_ repository.AssessmentRepository = (*memAssessmentRepo)(nil)
)
