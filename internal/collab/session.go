package collab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const (
	maxMessageSize = 4096

	defaultWriteTimeout = 10 * time.Second
	defaultPongTimeout  = 60 * time.Second
)

// SessionConfig bounds socket I/O of a session.
type SessionConfig struct {
	WriteTimeout time.Duration
	PongTimeout  time.Duration
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	if c.PongTimeout <= 0 {
		c.PongTimeout = defaultPongTimeout
	}
	return c
}

// pingInterval keeps pings well inside the peer's pong window.
func (c SessionConfig) pingInterval() time.Duration {
	return c.PongTimeout * 9 / 10
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the token is checked before the upgrade, origin is not a credential
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session is one WebSocket connection of an authenticated principal.
type Session struct {
	hub    *Hub
	conn   *websocket.Conn
	member *Member
	cfg    SessionConfig
	logger *logger.Logger
}

// Serve upgrades the request and runs the session until the peer goes away
// or ctx is done. The member leaves every room when Serve returns.
func Serve(ctx context.Context, hub *Hub, cfg SessionConfig, w http.ResponseWriter, r *http.Request, principal models.Principal) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade: %w", err)
	}

	s := &Session{
		hub:    hub,
		conn:   conn,
		member: hub.Register(principal.ID),
		cfg:    cfg.withDefaults(),
		logger: logger.FromContext(ctx),
	}
	s.run(ctx)
	return nil
}

func (s *Session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		s.writeLoop(ctx)
	}()

	s.readLoop(ctx)
	cancel()

	// closing the queue lets the writer drain and stop
	s.hub.Unregister(s.member)
	<-writerDone
	s.conn.Close()

	s.logger.Debug().
		Str("func", "Session.run").
		Str("member_id", s.member.ID()).
		Msg("session closed")
}

func (s *Session) readLoop(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	})

	// unblock ReadMessage when ctx ends first
	stop := context.AfterFunc(ctx, func() {
		s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug().Err(err).
					Str("func", "Session.readLoop").
					Str("member_id", s.member.ID()).
					Msg("connection lost")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if err = s.handle(message); err != nil {
			s.hub.Notify(s.member, models.RoomEvent{Type: models.EventError, Message: err.Error()})
		}
	}
}

func (s *Session) handle(message []byte) error {
	var cmd models.RoomCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		return fmt.Errorf("malformed message: %w", err)
	}

	switch cmd.Type {
	case models.MessageJoinInventory:
		err := s.hub.Join(s.member, cmd.InventoryID)
		if err == nil {
			s.logger.Debug().
				Str("func", "Session.handle").
				Str("member_id", s.member.ID()).
				Int64("inventory_id", cmd.InventoryID).
				Msg("joined room")
		}
		return err
	case models.MessageLeaveInventory:
		if cmd.InventoryID <= 0 {
			return ErrInvalidRoom
		}
		s.hub.Leave(s.member, cmd.InventoryID)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}

func (s *Session) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.pingInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.writeClose()
			return
		case event, ok := <-s.member.Events():
			if !ok {
				s.writeClose()
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteJSON(event); err != nil {
				// a write deadline cannot be recovered on a websocket
				s.logger.Debug().Err(err).
					Str("func", "Session.writeLoop").
					Str("member_id", s.member.ID()).
					Msg("write failed")
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Session) writeClose() {
	err := s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(s.cfg.WriteTimeout))
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		s.logger.Debug().Err(err).Str("func", "Session.writeClose").Msg("close frame not sent")
	}
}
