package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti := NewTokenIssuer([]byte("test-secret"), time.Hour)
	u := &User{ID: uuid.New(), Email: "doc@example.com", Role: "admin"}

	token, expiresAt, err := ti.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	claims, err := ti.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != u.ID.String() {
		t.Errorf("expected subject %s, got %s", u.ID, claims.Subject)
	}
	if claims.Email != u.Email {
		t.Errorf("expected email %s, got %s", u.Email, claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %s", claims.Role)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	ti := NewTokenIssuer([]byte("secret-a"), time.Hour)
	u := &User{ID: uuid.New(), Email: "doc@example.com"}
	token, _, err := ti.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenIssuer([]byte("secret-b"), time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Error("expected error parsing token with wrong secret")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	ti := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	u := &User{ID: uuid.New(), Email: "doc@example.com"}
	token, _, err := ti.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := ti.Parse(token); err == nil {
		t.Error("expected error parsing expired token")
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	ti := NewTokenIssuer([]byte("test-secret"), time.Hour)
	if _, err := ti.Parse("not-a-token"); err == nil {
		t.Error("expected error parsing garbage token")
	}
}
