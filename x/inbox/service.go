package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

type service struct {
	repository Repository
	client     client.Client
	catalog    core.CatalogService
	profile    core.ProfileService
	config     core.Config
}

// NewService creates a new inbox service
func NewService(
	repository Repository,
	client client.Client,
	catalog core.CatalogService,
	profile core.ProfileService,
	config core.Config,
) core.InboxService {
	return &service{repository, client, catalog, profile, config}
}

func describe(location, requester, purpose string) string {
	return fmt.Sprintf("Your dataset at %s is being requested by %s for the purpose of %s", location, requester, purpose)
}

// RequestAccess delivers exactly one notification about target to its publisher's inbox
func (s *service) RequestAccess(ctx context.Context, session core.Session, target string) (core.Notification, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.RequestAccess")
	defer span.End()
	span.SetAttributes(attribute.String("target", target))

	if session.WebID == "" {
		return core.Notification{}, core.NewErrorPermissionDenied()
	}
	if target == "" {
		return core.Notification{}, core.NewErrorInvalidInput("target", "Choose the dataset to request")
	}

	entry, err := s.catalog.Lookup(ctx, session, target)
	if err != nil {
		span.RecordError(err)
		return core.Notification{}, err
	}

	if entry.Publisher == "" {
		err := core.NewErrorNotFoundWithMessage(fmt.Sprintf("%s has no publisher", target))
		span.RecordError(err)
		return core.Notification{}, err
	}

	publisher, err := s.profile.Resolve(ctx, entry.Publisher)
	if err != nil {
		span.RecordError(err)
		return core.Notification{}, errors.Wrap(err, "failed to resolve publisher")
	}

	if publisher.Inbox == "" {
		err := core.NewErrorNotFoundWithMessage(fmt.Sprintf("The publisher %s has no inbox to receive requests", entry.Publisher))
		span.RecordError(err)
		return core.Notification{}, err
	}

	slug := xid.New().String()
	created := time.Now().UTC().Truncate(time.Second)
	description := describe(entry.Location, session.WebID, entry.Purpose)

	doc := graph.New(core.JoinURL(publisher.Inbox, slug))
	doc.SetThing(doc.NewThing(target).
		AddString(core.DCTermsDescription, description).
		AddURL(core.DCTermsCreator, session.WebID).
		AddURL(core.DCTermsReferences, entry.IRI).
		AddDateTime(core.DCTermsCreated, created))

	location, err := s.client.PostDocument(ctx, session, publisher.Inbox, slug, doc)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, fmt.Sprintf("failed to deliver request for %s to %s: %v", target, publisher.Inbox, err))
		return core.Notification{}, errors.Wrap(err, "failed to deliver request")
	}

	_, err = s.repository.Create(ctx, core.AccessRequestRecord{
		ID:           slug,
		Requester:    session.WebID,
		Publisher:    entry.Publisher,
		Catalog:      s.config.CatalogURL,
		DatasetID:    target,
		Inbox:        publisher.Inbox,
		Notification: location,
		Purpose:      entry.Purpose,
		Location:     entry.Location,
	})
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, fmt.Sprintf("request %s delivered but not recorded: %v", location, err))
	}

	return core.Notification{
		Location:    location,
		Inbox:       publisher.Inbox,
		Target:      target,
		Requester:   session.WebID,
		Description: description,
		Created:     created,
	}, nil
}

func (s *service) GetByRequester(ctx context.Context, requester string) ([]core.AccessRequestRecord, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.GetByRequester")
	defer span.End()

	return s.repository.GetByRequester(ctx, requester)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
