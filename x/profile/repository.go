//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/soda-altruism/portal/core"
)

// Repository caches resolved profiles
type Repository interface {
	GetCache(ctx context.Context, webID string) (core.Profile, error)
	SetCache(ctx context.Context, profile core.Profile, ttl time.Duration) error
}

type repository struct {
	mc *memcache.Client
}

// NewRepository creates a new profile repository
func NewRepository(mc *memcache.Client) Repository {
	return &repository{mc}
}

// memcached keys are limited to 250 bytes without spaces, so webids are hashed
func cacheKey(webID string) string {
	sum := sha256.Sum256([]byte(webID))
	return "profile:" + hex.EncodeToString(sum[:16])
}

func (r *repository) GetCache(ctx context.Context, webID string) (core.Profile, error) {
	ctx, span := tracer.Start(ctx, "Profile.Repository.GetCache")
	defer span.End()

	item, err := r.mc.Get(cacheKey(webID))
	if err != nil {
		if err == memcache.ErrCacheMiss {
			return core.Profile{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Profile{}, err
	}

	var profile core.Profile
	err = json.Unmarshal(item.Value, &profile)
	if err != nil {
		span.RecordError(err)
		return core.Profile{}, err
	}

	return profile, nil
}

func (r *repository) SetCache(ctx context.Context, profile core.Profile, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "Profile.Repository.SetCache")
	defer span.End()

	value, err := json.Marshal(profile)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.mc.Set(&memcache.Item{Key: cacheKey(profile.WebID), Value: value, Expiration: expiration(ttl)})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// memcached reads expirations above 30 days as unix timestamps
const maxExpiration = 30 * 24 * time.Hour

func expiration(ttl time.Duration) int32 {
	if ttl > maxExpiration {
		ttl = maxExpiration
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	return int32(ttl / time.Second)
}
