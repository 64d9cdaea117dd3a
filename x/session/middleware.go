package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soda-altruism/portal/core"
)

// Identify attaches the session named by the bearer token to the request.
// Requests without a valid token pass through anonymously.
func (s *service) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Session.Identify")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			session, err := s.Get(ctx, token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			c.Set(core.SessionCtxKey, session)
			span.SetAttributes(attribute.String("webid", session.WebID))
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Restrict rejects requests Identify could not attach a session to
func Restrict(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := FromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status": "error",
				"error":  "you need to sign in to perform this action",
			})
		}
		return next(c)
	}
}

// FromContext returns the session Identify attached to the request
func FromContext(c echo.Context) (core.Session, bool) {
	session, ok := c.Get(core.SessionCtxKey).(core.Session)
	return session, ok
}
