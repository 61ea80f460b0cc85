package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

func newAuthService(t *testing.T) *AuthService {
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in plain text")
	}

	token, logged, err := svc.Login(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, logged.ID)
	}

	subject, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if subject != user.ID {
		t.Errorf("expected token subject %s, got %s", user.ID, subject)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Login(ctx, "alice", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody", "password123")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Register(ctx, "alice", "other@example.com", "password123")
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterValidatesUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
	}{
		{"too short", "a"},
		{"too long", "abcdefghijklmnopqrstuvwxyz01234"},
		{"uppercase", "Alice"},
		{"illegal character", "ali-ce"},
		{"space", "ali ce"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, "a@example.com", "password123")
			if err == nil {
				t.Fatalf("username %q accepted", tc.username)
			}
			if apperrors.StatusCode(err) != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", apperrors.StatusCode(err))
			}
		})
	}

	if _, err := svc.Register(ctx, "alice.b_2", "a@example.com", "password123"); err != nil {
		t.Errorf("valid username rejected: %v", err)
	}
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	db := setupTestDB(t)
	other := NewAuthService(repository.NewUserRepository(db), "other-secret", time.Hour)
	forged, err := other.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := svc.ParseToken(forged); err == nil {
		t.Error("token signed with another secret accepted")
	}
}
