// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collab

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// DefaultSendBuffer is used when the configured buffer is not positive.
const DefaultSendBuffer = 64

// Relay carries room events between hub instances.
type Relay interface {
	Publish(ctx context.Context, env Envelope) error
	// Subscribe calls handle for every relayed envelope until ctx is done.
	Subscribe(ctx context.Context, handle func(Envelope)) error
}

// Envelope is a relayed room event tagged with its origin hub.
type Envelope struct {
	Origin string           `json:"origin"`
	Event  models.RoomEvent `json:"event"`
}

// Member is one connection registered with the hub.
type Member struct {
	id     string
	userID string
	send   chan models.RoomEvent
	rooms  map[int64]struct{}
	closed bool
}

// ID returns the connection id.
func (m *Member) ID() string { return m.id }

// UserID returns the principal that owns the connection.
func (m *Member) UserID() string { return m.userID }

// Events returns the outbound queue. It is closed on Unregister.
func (m *Member) Events() <-chan models.RoomEvent { return m.send }

// Hub partitions members into rooms and fans events out to them.
//
// Publishing holds the hub lock for the whole fan-out, so two events
// published to the same room reach every member in the same order.
// Enqueueing never blocks.
type Hub struct {
	mu      sync.Mutex
	rooms   map[int64]map[string]*Member
	members map[string]*Member

	instanceID string
	sendBuffer int
	relay      Relay
	logger     *logger.Logger
}

// NewHub creates a hub. relay may be nil for a single-instance deployment.
func NewHub(sendBuffer int, relay Relay, logger *logger.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = DefaultSendBuffer
	}
	return &Hub{
		rooms:      make(map[int64]map[string]*Member),
		members:    make(map[string]*Member),
		instanceID: uuid.NewString(),
		sendBuffer: sendBuffer,
		relay:      relay,
		logger:     logger,
	}
}

// Register adds a connection of userID to the hub. It is in no room yet.
func (h *Hub) Register(userID string) *Member {
	m := &Member{
		id:     uuid.NewString(),
		userID: userID,
		send:   make(chan models.RoomEvent, h.sendBuffer),
		rooms:  make(map[int64]struct{}),
	}

	h.mu.Lock()
	h.members[m.id] = m
	h.mu.Unlock()

	h.logger.Debug().
		Str("func", "Hub.Register").
		Str("member_id", m.id).
		Str("user_id", userID).
		Msg("member registered")
	return m
}

// Join adds m to the room of inventoryID. Joining twice is a no-op.
func (h *Hub) Join(m *Member, inventoryID int64) error {
	if inventoryID <= 0 {
		return ErrInvalidRoom
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if m.closed {
		return ErrMemberClosed
	}

	room, ok := h.rooms[inventoryID]
	if !ok {
		room = make(map[string]*Member)
		h.rooms[inventoryID] = room
	}
	room[m.id] = m
	m.rooms[inventoryID] = struct{}{}
	return nil
}

// Leave removes m from the room of inventoryID. Leaving a room the member
// is not in is a no-op.
func (h *Hub) Leave(m *Member, inventoryID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(m, inventoryID)
}

func (h *Hub) leaveLocked(m *Member, inventoryID int64) {
	delete(m.rooms, inventoryID)

	room, ok := h.rooms[inventoryID]
	if !ok {
		return
	}
	delete(room, m.id)
	if len(room) == 0 {
		delete(h.rooms, inventoryID)
	}
}

// Unregister removes m from every room and closes its queue.
func (h *Hub) Unregister(m *Member) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if m.closed {
		return
	}
	for inventoryID := range m.rooms {
		h.leaveLocked(m, inventoryID)
	}
	delete(h.members, m.id)
	m.closed = true
	close(m.send)

	h.logger.Debug().
		Str("func", "Hub.Unregister").
		Str("member_id", m.id).
		Msg("member unregistered")
}

// Notify enqueues event for m alone. It reports whether the event was
// accepted.
func (h *Hub) Notify(m *Member, event models.RoomEvent) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.enqueueLocked(m, event)
}

// Publish delivers event to the members of its room on this instance and
// hands it to the relay for the other instances. It returns the number of
// local members that accepted the event.
func (h *Hub) Publish(ctx context.Context, event models.RoomEvent) int {
	delivered := h.deliver(event)

	if h.relay != nil {
		if err := h.relay.Publish(ctx, Envelope{Origin: h.instanceID, Event: event}); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "Hub.Publish").
				Int64("inventory_id", event.InventoryID).
				Msg("failed to relay room event")
		}
	}

	return delivered
}

// Run consumes the relay until ctx is done. Without a relay it only waits
// for ctx.
func (h *Hub) Run(ctx context.Context) error {
	if h.relay == nil {
		<-ctx.Done()
		return nil
	}

	err := h.relay.Subscribe(ctx, func(env Envelope) {
		// our own events were delivered locally when published
		if env.Origin == h.instanceID {
			return
		}
		h.deliver(env.Event)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Members returns the number of members in the room of inventoryID.
func (h *Hub) Members(inventoryID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[inventoryID])
}

// Close unregisters every member.
func (h *Hub) Close() {
	h.mu.Lock()
	members := make([]*Member, 0, len(h.members))
	for _, m := range h.members {
		members = append(members, m)
	}
	h.mu.Unlock()

	for _, m := range members {
		h.Unregister(m)
	}
}

func (h *Hub) deliver(event models.RoomEvent) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, m := range h.rooms[event.InventoryID] {
		if h.enqueueLocked(m, event) {
			delivered++
		}
	}
	return delivered
}

func (h *Hub) enqueueLocked(m *Member, event models.RoomEvent) bool {
	if m.closed {
		return false
	}
	select {
	case m.send <- event:
		return true
	default:
		h.logger.Debug().
			Str("func", "Hub.deliver").
			Str("member_id", m.id).
			Str("type", event.Type).
			Msg("dropped event for slow member")
		return false
	}
}
