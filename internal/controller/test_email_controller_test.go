package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"vibe-notes-be/internal/constant"
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMailService struct {
	result *dto.NoteEmailResult
	err    error
	got    []dto.NoteEmailRequest
}

func (s *stubMailService) Send(ctx context.Context, req dto.NoteEmailRequest) (*dto.NoteEmailResult, error) {
	s.got = append(s.got, req)
	return s.result, s.err
}

func postTestEmail(t *testing.T, svc *stubMailService, body string) (int, dto.TestEmailResponse) {
	app := fiber.New()
	NewTestEmailController(svc, logger.NewFromZap(zap.NewNop())).RegisterRoutes(app.Group("/api"))

	req := httptest.NewRequest("POST", "/api/test-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out dto.TestEmailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestTestEmailController_MissingRecipient(t *testing.T) {
	svc := &stubMailService{}

	code, out := postTestEmail(t, svc, `{"title":"x"}`)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, constant.TestEmailMissingRecipient, out.Error)
	assert.Empty(t, svc.got)
}

func TestTestEmailController_SendsWithDefaults(t *testing.T) {
	svc := &stubMailService{result: &dto.NoteEmailResult{Success: true, DeliveryId: "<id@vibe.app>"}}

	code, out := postTestEmail(t, svc, `{"to":"a@x.com"}`)

	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, out.Success)
	assert.Equal(t, "Email sent successfully!", out.Message)
	assert.Equal(t, "<id@vibe.app>", out.EmailId)
	require.Len(t, svc.got, 1)
	assert.Equal(t, constant.TestEmailDefaultTitle, svc.got[0].Title)
	assert.Equal(t, constant.TestEmailDefaultBody, svc.got[0].Body)
	assert.Equal(t, "a@x.com", svc.got[0].Recipients[0].Email)
}

func TestTestEmailController_Failures(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		code, out := postTestEmail(t, &stubMailService{err: mailer.ErrNotConfigured}, `{"to":"a@x.com"}`)
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.False(t, out.Success)
		assert.Equal(t, mailer.ErrNotConfigured.Error(), out.Error)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc := &stubMailService{result: &dto.NoteEmailResult{Success: false, Message: "550 mailbox unavailable"}}
		code, out := postTestEmail(t, svc, `{"to":"a@x.com"}`)
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Equal(t, "550 mailbox unavailable", out.Error)
	})
}
