//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soda-altruism/portal/core"
)

// Repository stores live sessions
type Repository interface {
	Get(ctx context.Context, id string) (core.Session, error)
	Set(ctx context.Context, session core.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a new session repository
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *repository) Get(ctx context.Context, id string) (core.Session, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.Get")
	defer span.End()

	value, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return core.Session{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Session{}, err
	}

	var session core.Session
	err = json.Unmarshal(value, &session)
	if err != nil {
		span.RecordError(err)
		return core.Session{}, err
	}

	return session, nil
}

func (r *repository) Set(ctx context.Context, session core.Session, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "Session.Repository.Set")
	defer span.End()

	value, err := json.Marshal(session)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.rdb.Set(ctx, sessionKey(session.ID), value, ttl).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Session.Repository.Delete")
	defer span.End()

	err := r.rdb.Del(ctx, sessionKey(id)).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
