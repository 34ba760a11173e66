package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type smtpProvider struct {
	dialer *gomail.Dialer
}

func NewSMTPProvider(host string, port int, username, password string) Provider {
	if password == "" {
		return &smtpProvider{}
	}
	return &smtpProvider{dialer: gomail.NewDialer(host, port, username, password)}
}

func (p *smtpProvider) Configured() bool {
	return p.dialer != nil
}

func (p *smtpProvider) Send(ctx context.Context, msg *Message) (string, error) {
	if !p.Configured() {
		return "", ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", &TransportError{Err: err}
	}

	deliveryId := newDeliveryId(msg.FromAddress)
	m := buildMessage(msg, deliveryId)

	sc, err := p.dialer.Dial()
	if err != nil {
		return "", classify(err)
	}
	defer sc.Close()

	rcpt := make([]string, 0, len(msg.To)+len(msg.Cc))
	rcpt = append(rcpt, msg.To...)
	rcpt = append(rcpt, msg.Cc...)

	if err := sc.Send(msg.FromAddress, rcpt, m); err != nil {
		return "", classify(err)
	}
	return deliveryId, nil
}

func buildMessage(msg *Message, deliveryId string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", "<"+deliveryId+">")
	m.SetDateHeader("Date", time.Now())
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)
	return m
}

func newDeliveryId(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("%s@%s", uuid.NewString(), domain)
}

// classify separates SMTP replies (the provider said no) from network
// failures.
func classify(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return &ProviderError{Code: tpErr.Code, Message: tpErr.Msg}
	}
	return &TransportError{Err: err}
}
