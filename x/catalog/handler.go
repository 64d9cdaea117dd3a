// Package catalog advertises datasets on the data altruism catalog
package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/session"
)

var tracer = otel.Tracer("catalog")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Publish(c echo.Context) error
	Mine(c echo.Context) error
}

type handler struct {
	service core.CatalogService
}

// NewHandler creates a new handler
func NewHandler(service core.CatalogService) Handler {
	return &handler{service: service}
}

// List returns the datasets on the catalog
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.List")
	defer span.End()

	s, _ := session.FromContext(c)

	summaries, err := h.service.List(ctx, s)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": summaries})
}

// Get returns one dataset of the catalog
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.Get")
	defer span.End()

	s, _ := session.FromContext(c)

	entry, err := h.service.Lookup(ctx, s, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": entry})
}

// Publish advertises one of the caller's policies on the catalog
func (h handler) Publish(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.Publish")
	defer span.End()

	s, _ := session.FromContext(c)

	var request core.PublishRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "Invalid request"})
	}

	entry, err := h.service.Publish(ctx, s, request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": entry})
}

// Mine returns the publications of the caller
func (h handler) Mine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Catalog.Handler.Mine")
	defer span.End()

	s, _ := session.FromContext(c)

	records, err := h.service.GetByPublisher(ctx, s.WebID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": records})
}
