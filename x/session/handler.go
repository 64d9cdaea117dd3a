// Package session issues and verifies portal sessions
package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/soda-altruism/portal/core"
)

var tracer = otel.Tracer("session")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.SessionService
}

// NewHandler creates a new handler
func NewHandler(service core.SessionService) Handler {
	return &handler{service: service}
}

type createRequest struct {
	WebID       string `json:"webid"`
	AccessToken string `json:"accessToken"`
}

// the pod access token never leaves the server once stored
func public(session core.Session) core.Session {
	session.AccessToken = ""
	return session
}

// Create opens a session for the posted webid and pod access token
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Create")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "Invalid request"})
	}

	token, session, err := h.service.Create(ctx, request.WebID, request.AccessToken)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": echo.Map{
		"token":   token,
		"session": public(session),
	}})
}

// Get returns the session of the caller
func (h handler) Get(c echo.Context) error {
	session, ok := FromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "error": "no session"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": public(session)})
}

// Delete revokes the session of the caller
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Session.Handler.Delete")
	defer span.End()

	session, ok := FromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "error": "no session"})
	}

	err := h.service.Delete(ctx, session.ID)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.StatusCode(err), echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
