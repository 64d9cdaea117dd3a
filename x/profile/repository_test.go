package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(mc)

	_, err := repo.GetCache(ctx, "https://alice.example/profile/card#me")
	assert.ErrorAs(t, err, &core.ErrorNotFound{})

	profile := core.Profile{
		WebID:    "https://alice.example/profile/card#me",
		Storages: []string{"https://alice.example/"},
		Inbox:    "https://alice.example/inbox/",
	}

	err = repo.SetCache(ctx, profile, time.Minute)
	assert.NoError(t, err)

	cached, err := repo.GetCache(ctx, profile.WebID)
	if assert.NoError(t, err) {
		assert.Equal(t, profile, cached)
	}
}

func TestExpiration(t *testing.T) {
	assert.Equal(t, int32(600), expiration(10*time.Minute))
	assert.Equal(t, int32(30*24*60*60), expiration(30*24*time.Hour))
	assert.Equal(t, int32(30*24*60*60), expiration(365*24*time.Hour))
	assert.Equal(t, int32(1), expiration(0))
}
