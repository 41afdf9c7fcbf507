package scheduling

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the appointment endpoints on the given group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments/:id", h.GetAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
}

type createAppointmentRequest struct {
	PatientID  string `json:"patientId"`
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Notes      string `json:"notes"`
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PatientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId is required")
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startTime must be an ISO-8601 timestamp")
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endTime must be an ISO-8601 timestamp")
	}

	appt, err := h.svc.Create(c.Request().Context(), CreateRequest{
		PatientID:  req.PatientID,
		ResourceID: req.ResourceID,
		StartTime:  start,
		EndTime:    end,
		Notes:      req.Notes,
	})
	if err != nil {
		return schedulingError(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	appt, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return schedulingError(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return schedulingError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	start, err := parseDateParam(c.QueryParam("startDate"), time.Time{}, false)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate must be an ISO-8601 timestamp or date")
	}
	// Far-future default keeps the range open when endDate is omitted.
	end, err := parseDateParam(c.QueryParam("endDate"), time.Unix(1<<40, 0), true)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must be an ISO-8601 timestamp or date")
	}

	items, err := h.svc.ListByDateRange(c.Request().Context(), start, end, c.QueryParam("resourceId"))
	if err != nil {
		return schedulingError(err)
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

// parseDateParam accepts RFC 3339 timestamps or bare dates. A bare date in
// end position is inclusive, so it is extended by a day to keep the
// half-open range semantics.
func parseDateParam(value string, fallback time.Time, endOfDay bool) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24 * time.Hour)
	}
	return t, nil
}

// schedulingError maps domain sentinels onto HTTP status codes.
func schedulingError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidInterval), errors.Is(err, ErrPastDated), errors.Is(err, ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPatientNotFound), errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicateID), errors.Is(err, ErrReservationExpired):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
