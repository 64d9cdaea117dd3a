package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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
	config     core.Config
}

// NewService creates a new catalog service
func NewService(repository Repository, client client.Client, config core.Config) core.CatalogService {
	return &service{repository, client, config}
}

func validate(request core.PublishRequest) (core.Term, core.Term, error) {
	if request.Purpose == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("purpose", "Choose the purpose of policy")
	}
	if request.Category == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("category", "Choose the categories of personal data available in the resource")
	}
	if request.Resource == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("resource", "Indicate the URL of the resource")
	}
	if request.PolicyName == "" {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("policyName", "Choose the policy of the dataset")
	}
	if !graph.ValidIRI(request.Resource) {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("resource", "The URL of the resource contains characters that are not allowed in a URL")
	}
	if !graph.ValidIRI(request.PolicyName) || strings.ContainsAny(request.PolicyName, "/#?") {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("policyName", "The policy name cannot contain '/', '#', '?' or characters that are not allowed in a URL")
	}

	purpose, ok := core.LookupPurpose(request.Purpose)
	if !ok {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("purpose", "Unknown purpose: "+request.Purpose)
	}
	category, ok := core.LookupDataCategory(request.Category)
	if !ok {
		return core.Term{}, core.Term{}, core.NewErrorInvalidInput("category", "Unknown data category: "+request.Category)
	}

	return category, purpose, nil
}

// fetch reads the catalog. A catalog that does not exist yet is empty and
// may only be created, never overwritten.
func (s *service) fetch(ctx context.Context, session core.Session) (*graph.Graph, core.Precondition, error) {
	doc, etag, err := s.client.GetDocument(ctx, session, s.config.CatalogURL)
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return graph.New(s.config.CatalogURL), core.CreateOnly(), nil
		}
		return nil, core.Precondition{}, err
	}
	if etag == "" {
		// unversioned pod
		return doc, core.Precondition{}, nil
	}
	return doc, core.MatchVersion(etag), nil
}

// Publish advertises a stored policy on the catalog.
// The catalog is rewritten with a version precondition and the whole read-modify-write
// is repeated when another publisher got there first.
func (s *service) Publish(ctx context.Context, session core.Session, request core.PublishRequest) (core.CatalogEntry, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.Publish")
	defer span.End()

	category, purpose, err := validate(request)
	if err != nil {
		span.RecordError(err)
		return core.CatalogEntry{}, err
	}

	root, err := session.RequireRoot()
	if err != nil {
		span.RecordError(err)
		return core.CatalogEntry{}, err
	}

	policyURL := core.JoinURL(root, s.config.PolicyContainer) + request.PolicyName
	id := datasetID(policyURL)
	span.SetAttributes(attribute.String("dataset", id))

	attempts := s.config.CatalogAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var entry core.CatalogEntry
	published := false
	for attempt := 1; attempt <= attempts && !published; attempt++ {
		doc, precondition, err := s.fetch(ctx, session)
		if err != nil {
			span.RecordError(err)
			slog.ErrorContext(ctx, fmt.Sprintf("failed to read catalog %s: %v", s.config.CatalogURL, err))
			return core.CatalogEntry{}, errors.Wrap(err, "failed to read catalog")
		}

		dataset := newDataset(doc, id, policyURL, session.WebID, request.Resource, category, purpose)
		err = addDataset(doc, dataset)
		if err != nil {
			span.RecordError(err)
			return core.CatalogEntry{}, err
		}

		_, err = s.client.PutDocument(ctx, session, s.config.CatalogURL, doc, precondition)
		if err != nil {
			if errors.As(err, &core.ErrorConflict{}) {
				slog.InfoContext(ctx, fmt.Sprintf("catalog changed during publish, attempt %d of %d", attempt, attempts))
				continue
			}
			span.RecordError(err)
			slog.ErrorContext(ctx, fmt.Sprintf("failed to write catalog %s: %v", s.config.CatalogURL, err))
			return core.CatalogEntry{}, errors.Wrap(err, "failed to write catalog")
		}

		entry = toEntry(dataset)
		published = true
	}

	if !published {
		err := core.NewErrorConflict(s.config.CatalogURL)
		span.RecordError(err)
		return core.CatalogEntry{}, err
	}

	_, err = s.repository.Create(ctx, core.PublicationRecord{
		ID:        xid.New().String(),
		Publisher: session.WebID,
		Catalog:   s.config.CatalogURL,
		DatasetID: entry.ID,
		Policy:    entry.Policy,
		Location:  entry.Location,
		Category:  entry.Category,
		Purpose:   entry.Purpose,
	})
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, fmt.Sprintf("dataset %s published but not recorded: %v", entry.ID, err))
	}

	err = s.repository.PublishEvent(ctx, core.CatalogEvent{
		Type:    "published",
		Entry:   entry,
		Created: time.Now(),
	})
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, fmt.Sprintf("failed to broadcast dataset %s: %v", entry.ID, err))
	}

	return entry, nil
}

// List returns one summary per dataset node of the catalog
func (s *service) List(ctx context.Context, session core.Session) ([]core.DatasetSummary, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.List")
	defer span.End()

	doc, _, err := s.fetch(ctx, session)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return summarize(doc), nil
}

// Lookup returns the dataset node named target
func (s *service) Lookup(ctx context.Context, session core.Session, target string) (core.CatalogEntry, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.Lookup")
	defer span.End()

	doc, _, err := s.fetch(ctx, session)
	if err != nil {
		span.RecordError(err)
		return core.CatalogEntry{}, err
	}

	thing := doc.Thing(s.config.CatalogURL + "#" + target)
	if thing == nil {
		err := core.NewErrorNotFoundWithMessage(fmt.Sprintf("%s is not in the catalog", target))
		span.RecordError(err)
		return core.CatalogEntry{}, err
	}

	return toEntry(thing), nil
}

func (s *service) GetByPublisher(ctx context.Context, publisher string) ([]core.PublicationRecord, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.GetByPublisher")
	defer span.End()

	return s.repository.GetByPublisher(ctx, publisher)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
