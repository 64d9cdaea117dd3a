package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/slices"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/graph"
)

const msgExists = "There is already a policy with that name, choose another"

type service struct {
	repository Repository
	client     client.Client
	config     core.Config
}

// NewService creates a new policy service
func NewService(repository Repository, client client.Client, config core.Config) core.PolicyService {
	return &service{repository, client, config}
}

func (s *service) container(session core.Session) (string, error) {
	root, err := session.RequireRoot()
	if err != nil {
		return "", err
	}
	return core.JoinURL(root, s.config.PolicyContainer), nil
}

func (s *service) build(session core.Session, request core.PolicyRequest) (core.Policy, *graph.Graph, error) {
	category, purpose, err := validate(request)
	if err != nil {
		return core.Policy{}, nil, err
	}

	container, err := s.container(session)
	if err != nil {
		return core.Policy{}, nil, err
	}

	location := container + request.Name
	doc := buildDocument(location, session.WebID, request.Resource, category, purpose)

	document, err := doc.Turtle(client.Prefixes)
	if err != nil {
		return core.Policy{}, nil, errors.Wrap(err, "failed to encode policy")
	}

	return core.Policy{
		Location: location,
		Target:   request.Resource,
		Category: category.IRI,
		Purpose:  purpose.IRI,
		Assigner: session.WebID,
		Document: document,
	}, doc, nil
}

// Build renders the policy without storing it
func (s *service) Build(ctx context.Context, session core.Session, request core.PolicyRequest) (core.Policy, error) {
	_, span := tracer.Start(ctx, "Policy.Service.Build")
	defer span.End()

	policy, _, err := s.build(session, request)
	if err != nil {
		span.RecordError(err)
		return core.Policy{}, err
	}

	return policy, nil
}

// Store writes a new policy into the user's policy container.
// An existing policy is never overwritten.
func (s *service) Store(ctx context.Context, session core.Session, request core.PolicyRequest) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Store")
	defer span.End()

	policy, doc, err := s.build(session, request)
	if err != nil {
		span.RecordError(err)
		return core.Policy{}, err
	}
	span.SetAttributes(attribute.String("location", policy.Location))

	existing, err := s.listContainer(ctx, session)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, fmt.Sprintf("failed to list policies of %s: %v", session.WebID, err))
		return core.Policy{}, err
	}
	if slices.Contains(existing, policy.Location) {
		return core.Policy{}, core.NewErrorAlreadyExistsWithMessage(msgExists)
	}

	_, err = s.client.PutDocument(ctx, session, policy.Location, doc, core.CreateOnly())
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorConflict{}) {
			return core.Policy{}, core.NewErrorAlreadyExistsWithMessage(msgExists)
		}
		slog.ErrorContext(ctx, fmt.Sprintf("failed to store policy %s: %v", policy.Location, err))
		return core.Policy{}, errors.Wrap(err, "failed to store policy")
	}

	_, err = s.repository.Create(ctx, core.PolicyRecord{
		ID:       xid.New().String(),
		Owner:    session.WebID,
		Location: policy.Location,
		Target:   policy.Target,
		Category: policy.Category,
		Purpose:  policy.Purpose,
		Document: policy.Document,
	})
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, fmt.Sprintf("policy %s stored but not recorded: %v", policy.Location, err))
	}

	return policy, nil
}

func (s *service) listContainer(ctx context.Context, session core.Session) ([]string, error) {
	container, err := s.container(session)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.ListContainer(ctx, session, container)
	if err != nil {
		// the container is created by the first write into it
		if errors.As(err, &core.ErrorNotFound{}) {
			return []string{}, nil
		}
		return nil, err
	}
	return existing, nil
}

// ListNames returns the file names of the policies already stored
func (s *service) ListNames(ctx context.Context, session core.Session) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.ListNames")
	defer span.End()

	existing, err := s.listContainer(ctx, session)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	names := make([]string, 0, len(existing))
	for _, url := range existing {
		names = append(names, core.FileName(url))
	}
	slices.Sort(names)

	return names, nil
}

func (s *service) GetByOwner(ctx context.Context, owner string) ([]core.PolicyRecord, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.GetByOwner")
	defer span.End()

	return s.repository.GetByOwner(ctx, owner)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
