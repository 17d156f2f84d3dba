package collab

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func newPost(inventoryID, id int64) models.RoomEvent {
	return models.RoomEvent{
		Type:        models.EventNewPost,
		InventoryID: inventoryID,
		Post:        &models.DiscussionPost{ID: id, InventoryID: inventoryID, Content: "hi"},
	}
}

func drain(m *Member) []models.RoomEvent {
	var out []models.RoomEvent
	for {
		select {
		case e := <-m.Events():
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestHub_OnlyRoomMembersReceive(t *testing.T) {
	hub := NewHub(8, nil, logger.Nop())
	a := hub.Register("a")
	b := hub.Register("b")
	c := hub.Register("c")

	require.NoError(t, hub.Join(a, 7))
	require.NoError(t, hub.Join(b, 7))
	require.NoError(t, hub.Join(c, 8))

	delivered := hub.Publish(context.Background(), newPost(7, 1))
	assert.Equal(t, 2, delivered)

	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
	assert.Empty(t, drain(c))
}

func TestHub_JoinTwiceDeliversOnce(t *testing.T) {
	hub := NewHub(8, nil, logger.Nop())
	a := hub.Register("a")

	require.NoError(t, hub.Join(a, 7))
	require.NoError(t, hub.Join(a, 7))
	hub.Publish(context.Background(), newPost(7, 1))

	assert.Len(t, drain(a), 1)
	assert.Equal(t, 1, hub.Members(7))
}

func TestHub_LeaveAndUnregister(t *testing.T) {
	hub := NewHub(8, nil, logger.Nop())
	a := hub.Register("a")
	require.NoError(t, hub.Join(a, 7))
	require.NoError(t, hub.Join(a, 9))

	hub.Leave(a, 7)
	hub.Publish(context.Background(), newPost(7, 1))
	assert.Empty(t, drain(a))
	assert.Equal(t, 0, hub.Members(7))

	hub.Unregister(a)
	assert.Equal(t, 0, hub.Members(9))
	_, open := <-a.Events()
	assert.False(t, open)

	assert.ErrorIs(t, hub.Join(a, 7), ErrMemberClosed)
	assert.Zero(t, hub.Publish(context.Background(), newPost(9, 2)))

	// second unregister is harmless
	hub.Unregister(a)
}

func TestHub_JoinRejectsInvalidRoom(t *testing.T) {
	hub := NewHub(8, nil, logger.Nop())
	a := hub.Register("a")
	assert.ErrorIs(t, hub.Join(a, 0), ErrInvalidRoom)
	assert.ErrorIs(t, hub.Join(a, -3), ErrInvalidRoom)
}

func TestHub_PreservesPublishOrderPerRoom(t *testing.T) {
	const n = 50
	hub := NewHub(n, nil, logger.Nop())
	a := hub.Register("a")
	b := hub.Register("b")
	require.NoError(t, hub.Join(a, 7))
	require.NoError(t, hub.Join(b, 7))

	for i := int64(1); i <= n; i++ {
		hub.Publish(context.Background(), newPost(7, i))
	}

	for _, m := range []*Member{a, b} {
		events := drain(m)
		require.Len(t, events, n)
		for i, e := range events {
			assert.Equal(t, int64(i+1), e.Post.ID)
		}
	}
}

func TestHub_ConcurrentPublishersSameOrderForAllMembers(t *testing.T) {
	const perPublisher = 40
	hub := NewHub(4*perPublisher, nil, logger.Nop())
	members := []*Member{hub.Register("a"), hub.Register("b"), hub.Register("c")}
	for _, m := range members {
		require.NoError(t, hub.Join(m, 7))
	}

	var wg sync.WaitGroup
	for p := int64(0); p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := int64(0); i < perPublisher; i++ {
				hub.Publish(context.Background(), newPost(7, p*1000+i))
			}
		}()
	}
	wg.Wait()

	reference := drain(members[0])
	require.Len(t, reference, 4*perPublisher)
	for _, m := range members[1:] {
		assert.Equal(t, reference, drain(m))
	}
}

func TestHub_DropsForSlowMember(t *testing.T) {
	hub := NewHub(2, nil, logger.Nop())
	slow := hub.Register("slow")
	require.NoError(t, hub.Join(slow, 7))

	for i := int64(1); i <= 5; i++ {
		hub.Publish(context.Background(), newPost(7, i))
	}

	events := drain(slow)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Post.ID)
	assert.Equal(t, int64(2), events[1].Post.ID)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(2, nil, logger.Nop())
	a := hub.Register("a")
	require.NoError(t, hub.Join(a, 7))

	hub.Close()

	_, open := <-a.Events()
	assert.False(t, open)
	assert.Zero(t, hub.Members(7))
}

// loopRelay connects hubs in memory the way a Pub/Sub channel would:
// every envelope reaches every subscriber, including the publisher.
type loopRelay struct {
	mu       sync.Mutex
	handlers []func(Envelope)
	ready    chan struct{}
	fail     error
}

func newLoopRelay() *loopRelay {
	return &loopRelay{ready: make(chan struct{}, 16)}
}

func (l *loopRelay) Publish(_ context.Context, env Envelope) error {
	if l.fail != nil {
		return l.fail
	}
	l.mu.Lock()
	handlers := append([]func(Envelope){}, l.handlers...)
	l.mu.Unlock()
	for _, h := range handlers {
		h(env)
	}
	return nil
}

func (l *loopRelay) Subscribe(ctx context.Context, handle func(Envelope)) error {
	l.mu.Lock()
	l.handlers = append(l.handlers, handle)
	l.mu.Unlock()
	l.ready <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

func TestHub_RelayReachesOtherInstancesExactlyOnce(t *testing.T) {
	relay := newLoopRelay()
	first := NewHub(8, relay, logger.Nop())
	second := NewHub(8, relay, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for _, h := range []*Hub{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.Run(ctx))
		}()
	}
	<-relay.ready
	<-relay.ready

	local := first.Register("local")
	remote := second.Register("remote")
	require.NoError(t, first.Join(local, 7))
	require.NoError(t, second.Join(remote, 7))

	first.Publish(context.Background(), newPost(7, 1))

	assert.Len(t, drain(local), 1)
	assert.Len(t, drain(remote), 1)

	cancel()
	wg.Wait()
}

func TestHub_RelayFailureStillDeliversLocally(t *testing.T) {
	relay := newLoopRelay()
	relay.fail = errors.New("redis down")
	hub := NewHub(8, relay, logger.Nop())

	a := hub.Register("a")
	require.NoError(t, hub.Join(a, 7))

	assert.Equal(t, 1, hub.Publish(context.Background(), newPost(7, 1)))
	assert.Len(t, drain(a), 1)
}
