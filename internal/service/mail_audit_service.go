package service

import (
	"context"

	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/pkg/events"
	pktNats "vibe-notes-be/pkg/nats"
)

// EventSubscriber is satisfied by *nats.Subscriber.
type EventSubscriber interface {
	Subscribe(subject string, durableName string, handler pktNats.EventHandler) error
}

type IMailAuditService interface {
	Start() error
}

// mailAuditService copies every note email outcome into the mail log, so
// delivery history survives independently of the request that caused it.
type mailAuditService struct {
	subscriber EventSubscriber
	mailLogger logger.ILogger
}

func NewMailAuditService(subscriber EventSubscriber, mailLogger logger.ILogger) IMailAuditService {
	return &mailAuditService{
		subscriber: subscriber,
		mailLogger: mailLogger,
	}
}

func (s *mailAuditService) Start() error {
	if err := s.subscriber.Subscribe(pktNats.Subject(events.NoteEmailed), "mail-audit-sent", s.handle); err != nil {
		return err
	}
	return s.subscriber.Subscribe(pktNats.Subject(events.NoteEmailFailed), "mail-audit-failed", s.handle)
}

func (s *mailAuditService) handle(ctx context.Context, event events.Event) error {
	details := map[string]interface{}{
		"event":       event.EventType(),
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}

	if event.EventType() == events.NoteEmailFailed {
		s.mailLogger.Warn("MailAudit", "note email failed", details)
		return nil
	}
	s.mailLogger.Info("MailAudit", "note email delivered", details)
	return nil
}
