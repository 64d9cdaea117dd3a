// Package socket streams catalog publications to websocket clients
package socket

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/soda-altruism/portal/core"
)

// Handler is the interface for handling websocket
type Handler interface {
	Connect(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the request and streams catalog events.
// The initial filter comes from the query; clients may replace it by sending a Filter as JSON.
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to upgrade websocket: %v", err))
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var filter atomic.Pointer[Filter]
	filter.Store(&Filter{
		Category: c.QueryParam("category"),
		Purpose:  c.QueryParam("purpose"),
	})

	go func() {
		defer cancel()
		for {
			var next Filter
			err := ws.ReadJSON(&next)
			if err != nil {
				return
			}
			filter.Store(&next)
		}
	}()

	err = h.service.Stream(ctx, func() Filter { return *filter.Load() }, func(event core.CatalogEvent) error {
		return ws.WriteJSON(event)
	})
	if err != nil {
		slog.Warn(fmt.Sprintf("catalog feed closed: %v", err))
	}

	return nil
}
