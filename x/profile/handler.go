// Package profile reads public WebID profile documents
package profile

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/soda-altruism/portal/core"
)

var tracer = otel.Tracer("profile")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
}

type handler struct {
	service core.ProfileService
}

// NewHandler creates a new handler
func NewHandler(service core.ProfileService) Handler {
	return &handler{service: service}
}

// Get resolves the profile of the webid given as query parameter
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Profile.Handler.Get")
	defer span.End()

	webID := c.QueryParam("webid")
	if webID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "webid is required"})
	}

	profile, err := h.service.Resolve(ctx, webID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": profile})
}
