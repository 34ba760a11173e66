package controller

import (
	"errors"

	"vibe-notes-be/internal/constant"
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/mailer"
	"vibe-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITestEmailController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

// testEmailController sends one message to an arbitrary address. The route
// is unauthenticated; TEST_EMAIL_ENABLED=false removes it.
type testEmailController struct {
	mailService service.INoteMailService
	logger      logger.ILogger
}

func NewTestEmailController(mailService service.INoteMailService, log logger.ILogger) ITestEmailController {
	return &testEmailController{
		mailService: mailService,
		logger:      log,
	}
}

func (c *testEmailController) RegisterRoutes(r fiber.Router) {
	r.Post("/test-email", c.Send)
}

func (c *testEmailController) Send(ctx *fiber.Ctx) error {
	var req dto.TestEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.TestEmailResponse{Error: err.Error()})
	}

	if req.To == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.TestEmailResponse{Error: constant.TestEmailMissingRecipient})
	}

	title := req.Title
	if title == "" {
		title = constant.TestEmailDefaultTitle
	}
	body := req.Body
	if body == "" {
		body = constant.TestEmailDefaultBody
	}

	res, err := c.mailService.Send(ctx.Context(), dto.NoteEmailRequest{
		Recipients: []dto.EmailRecipient{{Email: req.To, Role: entity.RecipientRoleTo}},
		Title:      title,
		Body:       body,
	})
	if err != nil {
		if !errors.Is(err, mailer.ErrNotConfigured) {
			c.logger.Error("TestEmail", "unexpected send error", map[string]interface{}{"error": err})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.TestEmailResponse{Error: err.Error()})
	}
	if !res.Success {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.TestEmailResponse{Error: res.Message})
	}

	return ctx.JSON(dto.TestEmailResponse{
		Success: true,
		Message: "Email sent successfully!",
		EmailId: res.DeliveryId,
	})
}
