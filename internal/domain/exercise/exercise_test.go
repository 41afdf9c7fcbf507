package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func seedCatalog(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	for _, e := range []*Exercise{
		{Name: "Bridge", Category: "strength", Specialty: "orthopedic"},
		{Name: "Cat-Cow", Category: "mobility", Specialty: "orthopedic"},
		{Name: "Ankle Pumps", Category: "mobility", Specialty: "neurological"},
		{Name: "Dead Bug", Category: "strength", Specialty: "sports"},
	} {
		if err := svc.Create(ctx, e); err != nil {
			t.Fatalf("seed %s: %v", e.Name, err)
		}
	}
}

func TestService_ListFilters(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedCatalog(t, svc)
	ctx := context.Background()

	items, total, err := svc.List(ctx, Filter{Category: "mobility"}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 mobility exercises, got %d", total)
	}
	for _, e := range items {
		if e.Category != "mobility" {
			t.Errorf("unexpected category: %s", e.Category)
		}
	}

	items, total, err = svc.List(ctx, Filter{Category: "mobility", Specialty: "neurological"}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || items[0].Name != "Ankle Pumps" {
		t.Errorf("expected only Ankle Pumps, got %+v", items)
	}

	_, total, err = svc.List(ctx, Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 {
		t.Errorf("expected full catalog, got %d", total)
	}
}

func TestService_ListOrdersByName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedCatalog(t, svc)

	items, _, err := svc.List(context.Background(), Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Name < items[i-1].Name {
			t.Errorf("catalog out of order at position %d", i)
		}
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	err := svc.Create(context.Background(), &Exercise{Name: "", Category: "strength"})
	if !errors.Is(err, ErrInvalidExercise) {
		t.Errorf("expected ErrInvalidExercise, got %v", err)
	}
}

func TestHandler_ListExercises(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	seedCatalog(t, svc)
	h := NewHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/exercises?category=strength&specialty=sports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListExercises(c); err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []Exercise `json:"data"`
		Total int        `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Total != 1 || resp.Data[0].Name != "Dead Bug" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandler_CreateExercise(t *testing.T) {
	h := NewHandler(NewService(NewMemoryRepo()))

	body := `{"name":"Wall Sit","category":"strength","specialty":"orthopedic","videoUrl":"https://example.com/wall-sit"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/exercises", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateExercise(c); err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
