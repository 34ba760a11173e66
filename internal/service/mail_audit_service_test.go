package service

import (
	"context"
	"testing"
	"time"

	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/pkg/events"
	pktNats "vibe-notes-be/pkg/nats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSubscriber struct {
	handlers map[string]pktNats.EventHandler
}

func (f *fakeSubscriber) Subscribe(subject string, durableName string, handler pktNats.EventHandler) error {
	if f.handlers == nil {
		f.handlers = make(map[string]pktNats.EventHandler)
	}
	f.handlers[subject] = handler
	return nil
}

func TestMailAuditService_LogsOutcomes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sub := &fakeSubscriber{}
	svc := NewMailAuditService(sub, logger.NewFromZap(zap.New(core)))

	require.NoError(t, svc.Start())
	require.Len(t, sub.handlers, 2)

	ctx := context.Background()
	require.NoError(t, sub.handlers["events.NOTE_EMAILED"](ctx, events.BaseEvent{
		Type:       events.NoteEmailed,
		Data:       map[string]interface{}{"delivery_id": "<id@vibe.app>"},
		OccurredAt: time.Now(),
	}))
	require.NoError(t, sub.handlers["events.NOTE_EMAIL_FAILED"](ctx, events.BaseEvent{
		Type:       events.NoteEmailFailed,
		Data:       map[string]interface{}{"reason": "550 mailbox unavailable"},
		OccurredAt: time.Now(),
	}))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "note email delivered", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
