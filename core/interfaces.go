//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	Resolve(ctx context.Context, webID string) (Profile, error)
}

type SessionService interface {
	Create(ctx context.Context, webID, accessToken string) (string, Session, error)
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, id string) error
	Identify(next echo.HandlerFunc) echo.HandlerFunc
}

type PolicyService interface {
	Build(ctx context.Context, session Session, request PolicyRequest) (Policy, error)
	Store(ctx context.Context, session Session, request PolicyRequest) (Policy, error)
	ListNames(ctx context.Context, session Session) ([]string, error)
	GetByOwner(ctx context.Context, owner string) ([]PolicyRecord, error)
	Count(ctx context.Context) (int64, error)
}

type CatalogService interface {
	Publish(ctx context.Context, session Session, request PublishRequest) (CatalogEntry, error)
	List(ctx context.Context, session Session) ([]DatasetSummary, error)
	Lookup(ctx context.Context, session Session, target string) (CatalogEntry, error)
	GetByPublisher(ctx context.Context, publisher string) ([]PublicationRecord, error)
	Count(ctx context.Context) (int64, error)
}

type InboxService interface {
	RequestAccess(ctx context.Context, session Session, target string) (Notification, error)
	GetByRequester(ctx context.Context, requester string) ([]AccessRequestRecord, error)
	Count(ctx context.Context) (int64, error)
}
