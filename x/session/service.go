package session

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
	"github.com/soda-altruism/portal/x/jwt"
)

type service struct {
	repository Repository
	profile    core.ProfileService
	config     core.Config
}

// NewService creates a new session service
func NewService(repository Repository, profile core.ProfileService, config core.Config) core.SessionService {
	return &service{repository, profile, config}
}

// Create opens a session for webID and returns the signed token identifying it
func (s *service) Create(ctx context.Context, webID, accessToken string) (string, core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Create")
	defer span.End()

	if webID == "" {
		return "", core.Session{}, core.NewErrorInvalidInput("webid", "webid is required")
	}
	if !graph.ValidIRI(webID) {
		return "", core.Session{}, core.NewErrorInvalidInput("webid", "webid is not a valid IRI")
	}
	if accessToken == "" {
		return "", core.Session{}, core.NewErrorInvalidInput("accessToken", "accessToken is required")
	}
	span.SetAttributes(attribute.String("webid", webID))

	profile, err := s.profile.Resolve(ctx, webID)
	if err != nil {
		span.RecordError(err)
		return "", core.Session{}, err
	}

	now := time.Now()
	session := core.Session{
		ID:          xid.New().String(),
		WebID:       webID,
		PodRoot:     profile.PodRoot(),
		AccessToken: accessToken,
		ExpiresAt:   now.Add(s.config.SessionTTL),
	}

	err = s.repository.Set(ctx, session, s.config.SessionTTL)
	if err != nil {
		span.RecordError(err)
		return "", core.Session{}, errors.Wrap(err, "failed to store session")
	}

	claims := jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.config.FQDN,
			Subject:   webID,
			Audience:  jwtlib.ClaimStrings{s.config.FQDN},
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(session.ExpiresAt),
			ID:        session.ID,
		},
		PodRoot: session.PodRoot,
	}

	token, err := jwt.Create(claims, s.config.SessionSecret)
	if err != nil {
		span.RecordError(err)
		return "", core.Session{}, err
	}

	return token, session, nil
}

// Get verifies a session token and loads the session it names
func (s *service) Get(ctx context.Context, token string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Get")
	defer span.End()

	claims, err := jwt.Validate(token, s.config.SessionSecret, s.config.FQDN)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, core.NewErrorPermissionDenied()
	}

	session, err := s.repository.Get(ctx, claims.ID)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return core.Session{}, core.NewErrorPermissionDenied()
		}
		return core.Session{}, err
	}

	if session.WebID != claims.Subject {
		err := fmt.Errorf("session %s does not belong to %s", claims.ID, claims.Subject)
		span.RecordError(err)
		return core.Session{}, core.NewErrorPermissionDenied()
	}

	return session, nil
}

// Delete revokes a session
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Session.Service.Delete")
	defer span.End()

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
