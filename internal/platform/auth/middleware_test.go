package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func seedUser(t *testing.T, repo UserRepository, email, password, role string) *User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	u := &User{Email: email, Name: "Test User", PasswordHash: hash, Role: role}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return u
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	mw := Middleware(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_BasicAuth(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	u := seedUser(t, repo, "admin@example.com", "demo123456", "admin")
	mw := Middleware(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin@example.com", "demo123456")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := c.Get("user_id"); got != u.ID.String() {
		t.Errorf("expected user_id %s on context, got %v", u.ID, got)
	}
	if got := UserIDFromContext(c.Request().Context()); got != u.ID.String() {
		t.Errorf("expected user id in request context, got %q", got)
	}
}

func TestMiddleware_BasicAuthWrongPassword(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	seedUser(t, repo, "admin@example.com", "demo123456", "admin")
	mw := Middleware(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin@example.com", "wrong")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMiddleware_BearerToken(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	u := seedUser(t, repo, "admin@example.com", "demo123456", "admin")
	token, _, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	mw := Middleware(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := RoleFromContext(c.Request().Context()); got != "admin" {
		t.Errorf("expected role admin, got %q", got)
	}
}

func TestMiddleware_BearerTokenInvalid(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	mw := Middleware(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
