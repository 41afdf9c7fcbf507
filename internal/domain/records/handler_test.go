package records

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestHandler_CreateRecord(t *testing.T) {
	svc, patientID := newTestService()
	h := NewHandler(svc)

	body := fmt.Sprintf(`{"patientId":%q,"title":"Session notes","content":"Improved range of motion.","recordType":"progress"}`, patientID)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/medical-records", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRecord(c); err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var d ClinicalDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if d.ID == uuid.Nil || d.Title != "Session notes" {
		t.Errorf("unexpected record: %+v", d)
	}
}

func TestHandler_CreateRecord_UnknownPatient(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	body := fmt.Sprintf(`{"patientId":%q,"title":"t","content":"c"}`, uuid.New())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/medical-records", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateRecord(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_ListRecords_FilterByPatient(t *testing.T) {
	svc, patientID := newTestService()
	h := NewHandler(svc)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	if err := svc.Create(ctx, &ClinicalDocument{PatientID: patientID, Title: "t", Content: "c"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/medical-records?patientId="+patientID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRecords(c); err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	var resp struct {
		Data  []ClinicalDocument `json:"data"`
		Total int                `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("expected 1 record, got total=%d len=%d", resp.Total, len(resp.Data))
	}
}

func TestHandler_GetRecord_NotFound(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/medical-records/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.GetRecord(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
