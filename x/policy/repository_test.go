package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	record := core.PolicyRecord{
		ID:       "cn3q8s6p0l4c73a0f5dg",
		Owner:    "https://alice.example/profile/card#me",
		Location: "https://alice.example/altruism/steps-policy",
		Target:   "https://alice.example/data/steps.ttl",
		Category: core.DPVPD + "Health",
		Purpose:  core.DGA + "ScientificResearch",
	}

	created, err := repo.Create(ctx, record)
	if assert.NoError(t, err) {
		assert.Equal(t, record.ID, created.ID)
	}

	duplicate := record
	duplicate.ID = "cn3q8s6p0l4c73a0f5e0"
	_, err = repo.Create(ctx, duplicate)
	assert.Error(t, err)

	records, err := repo.GetByOwner(ctx, record.Owner)
	if assert.NoError(t, err) && assert.Len(t, records, 1) {
		assert.Equal(t, record.Location, records[0].Location)
		assert.False(t, records[0].CDate.IsZero())
	}

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
