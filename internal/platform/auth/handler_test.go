package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestLogin_Success(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	u := seedUser(t, repo, "admin@example.com", "demo123456", "admin")
	h := NewHandler(repo, issuer)

	e := echo.New()
	body := `{"email":"admin@example.com","password":"demo123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected token in response")
	}
	if resp.User.ID != u.ID.String() {
		t.Errorf("expected user id %s, got %s", u.ID, resp.User.ID)
	}

	claims, err := issuer.Parse(resp.Token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	seedUser(t, repo, "admin@example.com", "demo123456", "admin")
	h := NewHandler(repo, issuer)

	e := echo.New()
	body := `{"email":"admin@example.com","password":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	h := NewHandler(repo, issuer)

	e := echo.New()
	body := `{"email":"ghost@example.com","password":"demo123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	repo := NewMemoryUserRepo()
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	h := NewHandler(repo, issuer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
