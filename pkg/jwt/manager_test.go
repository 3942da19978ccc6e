package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.GenerateToken(userID, "candidate@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "candidate@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := NewManager("secret", -time.Minute).GenerateToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewManager("secret", -time.Minute).ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for expired token")
	}
}
