package service

import (
	"context"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/pkg/events"
)

// EventPublisher is satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// callerResolver keeps "no session" and "lookup failed" apart: the first
// asks the client to log in, the second is an authentication failure.
type callerResolver struct {
	identity  identity.Provider
	loginPath string
	logger    logger.ILogger
}

func (r callerResolver) resolve(ctx context.Context, token string) (*entity.Caller, *dto.CommandResult) {
	caller, err := r.identity.CurrentCaller(ctx, token)
	if err != nil {
		r.logger.Warn("Auth", "caller lookup failed", map[string]interface{}{"error": err.Error()})
		return nil, dto.AuthErrorResult("authentication failed: " + err.Error())
	}
	if caller == nil {
		return nil, dto.UnauthenticatedResult(r.loginPath)
	}
	return caller, nil
}
