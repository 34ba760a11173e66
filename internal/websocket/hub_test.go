package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vibe-notes-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(nil, logger.NewFromZap(zap.NewNop()))
	go hub.Run(ctx)
	return hub
}

func registerClient(t *testing.T, hub *Hub, userID uuid.UUID) *Client {
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	before := hub.ClientCount(userID)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == before+1 }, time.Second, 5*time.Millisecond)
	return client
}

func TestHub_NotifyRevalidateReachesOnlyOwner(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	phone := registerClient(t, hub, owner)
	laptop := registerClient(t, hub, owner)
	stranger := registerClient(t, hub, uuid.New())

	hub.NotifyRevalidate(owner)

	for _, c := range []*Client{phone, laptop} {
		select {
		case msg := <-c.Send:
			assert.JSONEq(t, `{"type":"notes.revalidate"}`, string(msg))
		default:
			t.Fatal("owner session was not notified")
		}
	}
	assert.Empty(t, stranger.Send)
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	client := registerClient(t, hub, owner)

	hub.NotifyRevalidate(owner)
	hub.NotifyRevalidate(owner)

	assert.Len(t, client.Send, 1)
	assert.Equal(t, 1, hub.ClientCount(owner))
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	client := registerClient(t, hub, owner)

	hub.unregister <- client

	require.Eventually(t, func() bool { return hub.ClientCount(owner) == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHub_StopReleasesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, logger.NewFromZap(zap.NewNop()))
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	owner := uuid.New()
	client := registerClient(t, hub, owner)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	_, open := <-client.Send
	assert.False(t, open)
	assert.Zero(t, hub.ClientCount(owner))

	unregistered := make(chan struct{})
	go func() {
		hub.Unregister(client)
		close(unregistered)
	}()
	select {
	case <-unregistered:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after the hub stopped")
	}

	assert.False(t, hub.Register(&Client{Hub: hub, UserID: owner, Send: make(chan []byte, 1)}))
}

func clusterPayload(t *testing.T, origin string, userID uuid.UUID) *redis.Message {
	data, err := json.Marshal(clusterMessage{
		Origin:       origin,
		TargetUserID: userID.String(),
		Message:      json.RawMessage(`{"type":"notes.revalidate"}`),
	})
	require.NoError(t, err)
	return &redis.Message{Channel: clusterChannel, Payload: string(data)}
}

func TestHub_ConsumeClusterDeliversForeignMessagesUntilCanceled(t *testing.T) {
	hub := NewHub(nil, logger.NewFromZap(zap.NewNop()))
	owner := uuid.New()
	client := &Client{Hub: hub, UserID: owner, Send: make(chan []byte, 2)}
	hub.clients[owner] = []*Client{client}

	ctx, cancel := context.WithCancel(context.Background())
	messages := make(chan *redis.Message)
	stopped := make(chan struct{})
	go func() {
		hub.consumeCluster(ctx, messages)
		close(stopped)
	}()

	messages <- clusterPayload(t, hub.instanceID, owner)
	messages <- &redis.Message{Channel: clusterChannel, Payload: "not json"}
	messages <- clusterPayload(t, "other-instance", owner)

	require.Eventually(t, func() bool { return len(client.Send) == 1 }, time.Second, 5*time.Millisecond)
	assert.JSONEq(t, `{"type":"notes.revalidate"}`, string(<-client.Send))

	// The message channel stays open; only the context ends the loop.
	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("cluster consumer ignored cancellation")
	}
}
