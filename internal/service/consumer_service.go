package service

import (
	"context"
	"encoding/json"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// RevalidationNotifier is satisfied by *websocket.Hub.
type RevalidationNotifier interface {
	NotifyRevalidate(userId uuid.UUID)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	notifier   RevalidationNotifier
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topicName string, notifier RevalidationNotifier, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		notifier:   notifier,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Revalidation is a hint; a bad payload is dropped, never redelivered.
	defer msg.Ack()

	var payload dto.PublishRevalidateMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "failed to unmarshal message", map[string]interface{}{"error": err, "message_id": msg.UUID})
		return
	}

	cs.logger.Debug("Consumer", "revalidating notes", map[string]interface{}{"user_id": payload.UserId, "reason": payload.Reason})
	cs.notifier.NotifyRevalidate(payload.UserId)
}
