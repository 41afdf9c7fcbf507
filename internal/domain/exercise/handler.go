package exercise

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dudufisio/clinic-api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/exercises", h.ListExercises)
	api.POST("/exercises", h.CreateExercise)
}

func (h *Handler) CreateExercise(c echo.Context) error {
	var e Exercise
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), &e); err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) ListExercises(c echo.Context) error {
	pg := pagination.FromContext(c)
	f := Filter{
		Category:  c.QueryParam("category"),
		Specialty: c.QueryParam("specialty"),
	}

	items, total, err := h.svc.List(c.Request().Context(), f, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Exercise{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
