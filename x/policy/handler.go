// Package policy generates ODRL offers and stores them in the user's pod
package policy

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/session"
)

var tracer = otel.Tracer("policy")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Preview(c echo.Context) error
	Create(c echo.Context) error
	List(c echo.Context) error
	Mine(c echo.Context) error
}

type handler struct {
	service core.PolicyService
}

// NewHandler creates a new handler
func NewHandler(service core.PolicyService) Handler {
	return &handler{service: service}
}

func errorResponse(c echo.Context, err error) error {
	body := echo.Map{"status": "error", "error": err.Error()}
	var invalid core.ErrorInvalidInput
	if errors.As(err, &invalid) {
		body["field"] = invalid.Field
	}
	return c.JSON(core.StatusCode(err), body)
}

// Preview returns the turtle rendering of a policy without storing it
func (h handler) Preview(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Preview")
	defer span.End()

	s, _ := session.FromContext(c)

	var request core.PolicyRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "Invalid request"})
	}

	policy, err := h.service.Build(ctx, s, request)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policy})
}

// Create stores a new policy in the caller's pod
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Create")
	defer span.End()

	s, _ := session.FromContext(c)

	var request core.PolicyRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "Invalid request"})
	}

	policy, err := h.service.Store(ctx, s, request)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": policy})
}

// List returns the names of the policies in the caller's pod
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.List")
	defer span.End()

	s, _ := session.FromContext(c)

	names, err := h.service.ListNames(ctx, s)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": names})
}

// Mine returns the ledger of policies the caller stored through the portal
func (h handler) Mine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Mine")
	defer span.End()

	s, _ := session.FromContext(c)

	records, err := h.service.GetByOwner(ctx, s.WebID)
	if err != nil {
		span.RecordError(err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": records})
}
