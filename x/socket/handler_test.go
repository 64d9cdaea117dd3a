package socket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/internal/testutil"
)

func event(id, category, purpose string) core.CatalogEvent {
	return core.CatalogEvent{
		Type: "published",
		Entry: core.CatalogEntry{
			ID:       id,
			Category: core.DPVPD + category,
			Purpose:  core.DGA + purpose,
		},
		Created: time.Now(),
	}
}

func TestFilterMatch(t *testing.T) {
	health := event("dataset-a", "Health", "ScientificResearch")

	assert.True(t, Filter{}.Match(health))
	assert.True(t, Filter{Category: "Health"}.Match(health))
	assert.True(t, Filter{Category: "Health", Purpose: "ScientificResearch"}.Match(health))
	assert.False(t, Filter{Category: "Age"}.Match(health))
	assert.False(t, Filter{Purpose: "CombatClimateChange"}.Match(health))
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	e := echo.New()
	e.GET("/socket", NewHandler(NewService(rdb)).Connect)
	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/socket?category=Health"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if !assert.NoError(t, err) {
		return
	}
	defer ws.Close()

	// wait for the handler to subscribe
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		subs, err := rdb.PubSubNumSub(ctx, core.CatalogEventChannel).Result()
		if err == nil && subs[core.CatalogEventChannel] > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	for _, ev := range []core.CatalogEvent{
		event("dataset-age", "Age", "ImproveHealthcare"),
		event("dataset-health", "Health", "ScientificResearch"),
	} {
		payload, _ := json.Marshal(ev)
		assert.NoError(t, rdb.Publish(ctx, core.CatalogEventChannel, string(payload)).Err())
	}

	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	var received core.CatalogEvent
	err = ws.ReadJSON(&received)
	if assert.NoError(t, err) {
		assert.Equal(t, "dataset-health", received.Entry.ID)
	}
}
