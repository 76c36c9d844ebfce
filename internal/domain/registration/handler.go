package registration

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mahalshifa/opd/internal/domain/token"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/registrations", h.Register)
	api.GET("/patients/:id/slip", h.ReprintSlip)
}

func (h *Handler) Register(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Register(c.Request().Context(), &req)
	if err != nil {
		var fe FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fe})
		}
		if errors.Is(err, token.ErrSequenceUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "token sequence unavailable, please retry")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "registration could not be saved, please retry")
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) ReprintSlip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	html, err := h.svc.Reprint(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "registration not found")
	}
	return c.HTML(http.StatusOK, html)
}
