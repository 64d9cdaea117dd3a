// Package inbox delivers access requests to dataset publishers
package inbox

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/session"
)

var tracer = otel.Tracer("inbox")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Request(c echo.Context) error
	Mine(c echo.Context) error
}

type handler struct {
	service core.InboxService
}

// NewHandler creates a new handler
func NewHandler(service core.InboxService) Handler {
	return &handler{service: service}
}

// Request asks the publisher of a catalog dataset for access
func (h handler) Request(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Inbox.Handler.Request")
	defer span.End()

	s, _ := session.FromContext(c)

	notification, err := h.service.RequestAccess(ctx, s, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": notification})
}

// Mine returns the requests the caller sent
func (h handler) Mine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Inbox.Handler.Mine")
	defer span.End()

	s, _ := session.FromContext(c)

	records, err := h.service.GetByRequester(ctx, s.WebID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": records})
}
