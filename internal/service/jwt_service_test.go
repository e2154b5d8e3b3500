package service

import (
	"errors"
	"testing"
	"time"

	"brain-tutor/internal/domain"
)

func TestJWTService(t *testing.T) {
	user := domain.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}

	t.Run("emite y parsea un access token", func(t *testing.T) {
		svc := NewJWTService("test-secret", time.Minute, time.Hour)

		pair, err := svc.GeneratePair(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected both tokens")
		}
		if pair.ExpiresIn != 60 {
			t.Fatalf("expected expires_in 60, got %d", pair.ExpiresIn)
		}

		claims, err := svc.ParseAccessToken(pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "u1" || claims.Email != "ana@example.com" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("el refresh token no sirve como access token", func(t *testing.T) {
		svc := NewJWTService("test-secret", time.Minute, time.Hour)

		pair, err := svc.GeneratePair(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid, got %v", err)
		}
	})

	t.Run("refresh rota el token y revoca el anterior", func(t *testing.T) {
		svc := NewJWTService("test-secret", time.Minute, time.Hour)

		pair, err := svc.GeneratePair(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		renewed, err := svc.RefreshPair(pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := svc.ParseAccessToken(renewed.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "u1" {
			t.Fatalf("identity lost in rotation: %+v", claims)
		}

		// El refresh usado queda revocado: un segundo uso falla.
		if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected rotation to revoke, got %v", err)
		}
	})

	t.Run("firma ajena se rechaza", func(t *testing.T) {
		issuer := NewJWTService("secret-a", time.Minute, time.Hour)
		verifier := NewJWTService("secret-b", time.Minute, time.Hour)

		pair, err := issuer.GeneratePair(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := verifier.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid, got %v", err)
		}
	})

	t.Run("token vencido devuelve error propio", func(t *testing.T) {
		svc := NewJWTService("test-secret", time.Minute, time.Hour)
		svc.accessTTL = -time.Minute

		pair, err := svc.GeneratePair(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTExpired) {
			t.Fatalf("expected ErrJWTExpired, got %v", err)
		}
	})

	t.Run("entrada basura", func(t *testing.T) {
		svc := NewJWTService("test-secret", time.Minute, time.Hour)

		if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid, got %v", err)
		}
		if _, err := svc.ParseAccessToken("not.a.jwt"); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid, got %v", err)
		}
		if _, err := svc.RefreshPair("   "); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid, got %v", err)
		}
	})
}

func TestMemoryRefreshTokenStore(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-1", "u1", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := store.Exists("jti-1")
	if err != nil || !ok {
		t.Fatalf("expected stored jti to exist, got ok=%v err=%v", ok, err)
	}

	if err := store.Revoke("jti-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err = store.Exists("jti-1")
	if err != nil || ok {
		t.Fatalf("expected revoked jti to be gone, got ok=%v err=%v", ok, err)
	}

	// Un jti vencido no existe aunque nadie lo revoque.
	if err := store.Store("jti-2", "u1", -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err = store.Exists("jti-2")
	if err != nil || ok {
		t.Fatalf("expected expired jti to be gone, got ok=%v err=%v", ok, err)
	}
}
