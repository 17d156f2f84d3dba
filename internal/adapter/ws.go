package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const (
	roomEventsBuffer = 64
	roomWriteTimeout = 10 * time.Second
)

type wsRoomClient struct {
	url    string
	token  string
	dialer *websocket.Dialer

	// writeMu serializes writers; gorilla allows one concurrent writer.
	writeMu sync.Mutex
	conn    *websocket.Conn
	events  chan models.RoomEvent

	closeOnce sync.Once

	logger *logger.Logger
}

// NewWebSocketRoomClient returns a collaboration channel client for the
// server at cfg.HTTPAddress. The socket lives at /api/ws on the same host.
func NewWebSocketRoomClient(cfg config.ClientAdapter, logger *logger.Logger) (RoomClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsURL := baseURL
	switch {
	case strings.HasPrefix(wsURL, "https://"):
		wsURL = "wss://" + strings.TrimPrefix(wsURL, "https://")
	case strings.HasPrefix(wsURL, "http://"):
		wsURL = "ws://" + strings.TrimPrefix(wsURL, "http://")
	}

	return &wsRoomClient{
		url:   wsURL + "/api/ws",
		token: strings.TrimSpace(cfg.Token),
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.RequestTimeout,
		},
		events: make(chan models.RoomEvent, roomEventsBuffer),
		logger: logger,
	}, nil
}

func (c *wsRoomClient) Connect(ctx context.Context) error {
	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("dial room channel: http %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("dial room channel: %w", err)
	}

	c.conn = conn
	go c.readLoop()
	return nil
}

// readLoop forwards server events until the connection ends. A full
// events buffer drops the event.
func (c *wsRoomClient) readLoop() {
	defer close(c.events)

	for {
		var event models.RoomEvent
		if err := c.conn.ReadJSON(&event); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug().Err(err).Str("func", "wsRoomClient.readLoop").Msg("room connection ended")
			}
			return
		}

		select {
		case c.events <- event:
		default:
			c.logger.Warn().Str("func", "wsRoomClient.readLoop").
				Str("type", event.Type).
				Msg("room event dropped, consumer is slow")
		}
	}
}

func (c *wsRoomClient) Join(inventoryID int64) error {
	return c.send(models.RoomCommand{Type: models.MessageJoinInventory, InventoryID: inventoryID})
}

func (c *wsRoomClient) Leave(inventoryID int64) error {
	return c.send(models.RoomCommand{Type: models.MessageLeaveInventory, InventoryID: inventoryID})
}

func (c *wsRoomClient) Events() <-chan models.RoomEvent {
	return c.events
}

func (c *wsRoomClient) Close() error {
	if c.conn == nil {
		return nil
	}

	var err error
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(roomWriteTimeout))
		c.writeMu.Unlock()
		err = c.conn.Close()
	})
	return err
}

func (c *wsRoomClient) send(cmd models.RoomCommand) error {
	if c.conn == nil {
		return ErrRoomClosed
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(roomWriteTimeout)); err != nil {
		return fmt.Errorf("%w: %w", ErrRoomClosed, err)
	}
	if err := c.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("%w: %w", ErrRoomClosed, err)
	}
	return nil
}
