package identity

import (
	"context"
	"errors"

	"vibe-notes-be/internal/entity"
)

var (
	ErrInvalidToken  = errors.New("invalid session token")
	ErrNotConfigured = errors.New("identity provider is not configured: set JWT_SECRET")
)

// Provider resolves the caller behind a session token.
//
// CurrentCaller returns (nil, nil) when there is no live session: no token,
// an expired token or a revoked one. A non-nil error means the lookup itself
// failed and the caller could not be determined.
type Provider interface {
	CurrentCaller(ctx context.Context, token string) (*entity.Caller, error)
	EndSession(ctx context.Context, token string) error
}
