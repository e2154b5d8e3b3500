package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore registra los jti de refresh tokens vigentes. La
// rotacion en RefreshPair depende de que Revoke sea definitivo: un jti
// revocado o vencido nunca vuelve a existir.
type RefreshTokenStore interface {
	Store(jti, userID string, ttl time.Duration) error
	Exists(jti string) (bool, error)
	Revoke(jti string) error
}

// redisStoreTimeout acota cada operacion contra redis; el login no debe
// colgarse por un backend de sesiones lento.
const redisStoreTimeout = 500 * time.Millisecond

// memoryRefreshTokenStore respalda sesiones en proceso. Sirve para
// desarrollo y tests; en produccion con varias replicas se usa redis.
type memoryRefreshTokenStore struct {
	mu        sync.Mutex
	expiresAt map[string]time.Time
}

func NewMemoryRefreshTokenStore() RefreshTokenStore {
	return &memoryRefreshTokenStore{
		expiresAt: make(map[string]time.Time),
	}
}

func (s *memoryRefreshTokenStore) Store(jti, _ string, ttl time.Duration) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt[jti] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memoryRefreshTokenStore) Exists(jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.expiresAt[jti]
	if !ok {
		return false, nil
	}
	// Los vencidos se limpian de forma perezosa al consultarlos.
	if time.Now().UTC().After(deadline) {
		delete(s.expiresAt, jti)
		return false, nil
	}
	return true, nil
}

func (s *memoryRefreshTokenStore) Revoke(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expiresAt, jti)
	return nil
}

// redisRefreshTokenStore comparte sesiones entre replicas. El TTL de la
// clave replica el del token, asi redis expira solo lo que el JWT ya no
// aceptaria.
type redisRefreshTokenStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	if client == nil {
		return nil
	}
	return &redisRefreshTokenStore{
		client: client,
		prefix: "tutor:refresh:",
	}
}

func (s *redisRefreshTokenStore) Store(jti, userID string, ttl time.Duration) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	ctx, cancel := s.opContext()
	defer cancel()
	return s.client.Set(ctx, s.prefix+jti, userID, ttl).Err()
}

func (s *redisRefreshTokenStore) Exists(jti string) (bool, error) {
	if strings.TrimSpace(jti) == "" {
		return false, nil
	}
	ctx, cancel := s.opContext()
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisRefreshTokenStore) Revoke(jti string) error {
	if strings.TrimSpace(jti) == "" {
		return nil
	}
	ctx, cancel := s.opContext()
	defer cancel()
	return s.client.Del(ctx, s.prefix+jti).Err()
}

func (s *redisRefreshTokenStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisStoreTimeout)
}
