package bodymap

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/body-map/pain-points", h.ListPainPoints)
	api.POST("/body-map/pain-points", h.CreatePainPoint)
}

type createPainPointRequest struct {
	PatientID   string  `json:"patientId"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Intensity   int     `json:"intensity"`
	Description string  `json:"description"`
}

func (h *Handler) CreatePainPoint(c echo.Context) error {
	var req createPainPointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
	}

	p := &PainPoint{
		PatientID:   patientID,
		X:           req.X,
		Y:           req.Y,
		Intensity:   req.Intensity,
		Description: req.Description,
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		switch {
		case errors.Is(err, ErrInvalidPoint):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPatientNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPainPoints(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId is required")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*PainPoint{}
	}
	return c.JSON(http.StatusOK, items)
}
