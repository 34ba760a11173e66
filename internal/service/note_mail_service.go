package service

import (
	"bytes"
	"context"
	"errors"
	htmltemplate "html/template"
	texttemplate "text/template"

	"vibe-notes-be/internal/constant"
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/mailer"
)

type INoteMailService interface {
	// Send makes at most one delivery attempt. The only error it returns is
	// mailer.ErrNotConfigured; every other outcome is in the result.
	Send(ctx context.Context, req dto.NoteEmailRequest) (*dto.NoteEmailResult, error)
}

type noteMailService struct {
	provider     mailer.Provider
	senderEmail  string
	senderName   string
	logger       logger.ILogger
	htmlTemplate *htmltemplate.Template
	textTemplate *texttemplate.Template
}

type noteEmailView struct {
	Title  string
	Body   string
	Footer string
}

func NewNoteMailService(provider mailer.Provider, senderEmail, senderName string, log logger.ILogger) INoteMailService {
	return &noteMailService{
		provider:     provider,
		senderEmail:  senderEmail,
		senderName:   senderName,
		logger:       log,
		htmlTemplate: htmltemplate.Must(htmltemplate.New("note_html").Parse(constant.NoteEmailHTMLTemplate)),
		textTemplate: texttemplate.Must(texttemplate.New("note_text").Parse(constant.NoteEmailTextTemplate)),
	}
}

func (s *noteMailService) Send(ctx context.Context, req dto.NoteEmailRequest) (*dto.NoteEmailResult, error) {
	if !s.provider.Configured() {
		s.logger.Error("NoteMail", "email provider credential is not configured", nil)
		return nil, mailer.ErrNotConfigured
	}

	if len(req.Recipients) == 0 {
		s.logger.Info("NoteMail", "no recipients provided, skipping send", nil)
		return &dto.NoteEmailResult{Success: true, Message: constant.MailNoRecipients}, nil
	}

	to := make([]string, 0, len(req.Recipients))
	cc := make([]string, 0)
	for _, r := range req.Recipients {
		switch r.Role {
		case entity.RecipientRoleTo:
			to = append(to, r.Email)
		case entity.RecipientRoleCc:
			cc = append(cc, r.Email)
		}
	}

	if len(to) == 0 {
		s.logger.Warn("NoteMail", "no primary recipient, email not sent", map[string]interface{}{"cc": cc})
		return &dto.NoteEmailResult{Success: false, Message: constant.MailPrimaryRequired}, nil
	}

	title := req.Title
	if title == "" {
		title = entity.DefaultNoteTitle
	}
	view := noteEmailView{Title: title, Body: req.Body, Footer: constant.NoteEmailFooter}

	var html, text bytes.Buffer
	if err := s.htmlTemplate.Execute(&html, view); err != nil {
		return &dto.NoteEmailResult{Success: false, Message: err.Error()}, nil
	}
	if err := s.textTemplate.Execute(&text, view); err != nil {
		return &dto.NoteEmailResult{Success: false, Message: err.Error()}, nil
	}

	msg := &mailer.Message{
		FromName:    firstNonEmpty(req.SenderName, s.senderName),
		FromAddress: firstNonEmpty(req.SenderEmail, s.senderEmail),
		To:          to,
		Cc:          cc,
		Subject:     title,
		HTML:        html.String(),
		Text:        text.String(),
	}

	deliveryId, err := s.provider.Send(ctx, msg)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return nil, err
		}

		var providerErr *mailer.ProviderError
		if errors.As(err, &providerErr) {
			s.logger.Error("NoteMail", "provider rejected message", map[string]interface{}{"error": err, "to": to})
			return &dto.NoteEmailResult{Success: false, Message: providerErr.Error()}, nil
		}

		s.logger.Error("NoteMail", "email provider unreachable", map[string]interface{}{"error": err})
		return &dto.NoteEmailResult{Success: false, Message: constant.MailProviderUnreachable}, nil
	}

	s.logger.Info("NoteMail", "email sent", map[string]interface{}{"delivery_id": deliveryId, "to": len(to), "cc": len(cc)})
	return &dto.NoteEmailResult{Success: true, DeliveryId: deliveryId}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
