package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/core"
)

type service struct {
	repository Repository
	client     client.Client
	config     core.Config
}

// NewService creates a new profile service
func NewService(repository Repository, client client.Client, config core.Config) core.ProfileService {
	return &service{repository, client, config}
}

// Resolve reads the storage and inbox of a WebID from its public profile document
func (s *service) Resolve(ctx context.Context, webID string) (core.Profile, error) {
	ctx, span := tracer.Start(ctx, "Profile.Service.Resolve")
	defer span.End()

	cached, err := s.repository.GetCache(ctx, webID)
	if err == nil {
		return cached, nil
	}

	document, _, err := s.client.GetDocument(ctx, core.Session{}, core.DocumentURL(webID))
	if err != nil {
		span.RecordError(err)
		return core.Profile{}, errors.Wrap(err, "failed to fetch profile document")
	}

	me := document.Thing(webID)
	if me == nil {
		err := core.NewErrorNotFoundWithMessage(fmt.Sprintf("%s is not described by its profile document", webID))
		span.RecordError(err)
		return core.Profile{}, err
	}

	profile := core.Profile{
		WebID:    webID,
		Name:     me.GetString(core.FOAFName),
		Storages: me.GetURLAll(core.PIMStorage),
		Inbox:    me.GetURL(core.LDPInbox),
	}

	err = s.repository.SetCache(ctx, profile, s.config.ProfileCacheTTL)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, fmt.Sprintf("failed to cache profile of %s: %v", webID, err))
	}

	return profile, nil
}
