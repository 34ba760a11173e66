package mailer

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured means no provider credential was supplied. It is a
// configuration fault and is never retried.
var ErrNotConfigured = errors.New("email service is not configured: set SMTP_PASSWORD")

type Message struct {
	FromName    string
	FromAddress string
	To          []string
	Cc          []string
	Subject     string
	HTML        string
	Text        string
}

// Provider delivers one message per Send call and returns the
// provider-assigned delivery id.
type Provider interface {
	Configured() bool
	Send(ctx context.Context, msg *Message) (string, error)
}

// ProviderError is a rejection reported by the remote provider itself.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// TransportError means the provider could not be reached or the
// conversation broke off before a reply was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "email transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
