package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vibe-notes-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanNotifier chan uuid.UUID

func (c chanNotifier) NotifyRevalidate(userId uuid.UUID) {
	c <- userId
}

func TestConsumerService_NotifiesOwner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	notified := make(chanNotifier, 1)
	consumer := NewConsumerService(pubSub, "notes.revalidate", notified, nopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("notes.revalidate", pubSub)

	// A malformed payload is dropped without blocking the next one.
	require.NoError(t, pubSub.Publish("notes.revalidate", message.NewMessage(watermill.NewUUID(), []byte("{"))))

	userId := uuid.New()
	payload, err := json.Marshal(dto.PublishRevalidateMessage{UserId: userId, Reason: "NOTE_CREATED"})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	select {
	case got := <-notified:
		assert.Equal(t, userId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("revalidation was not delivered")
	}
}
