package controller

import (
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// respondCommand writes the HTTP rendition of a command result. Browser
// form posts without a session are sent to the login page; API clients get
// a 401 carrying the same redirect target.
func respondCommand(ctx *fiber.Ctx, res *dto.CommandResult, message string) error {
	switch res.Status {
	case dto.ResultOk:
		return ctx.JSON(serverutils.SuccessResponse(message, res))

	case dto.ResultUnauthenticated:
		if serverutils.WantsHTML(ctx) {
			return ctx.Redirect(res.RedirectTo, fiber.StatusSeeOther)
		}
		return respondError(ctx, fiber.StatusUnauthorized, res)

	case dto.ResultAuthError:
		return respondError(ctx, fiber.StatusUnauthorized, res)

	default:
		return respondError(ctx, fiber.StatusInternalServerError, res)
	}
}

func respondError(ctx *fiber.Ctx, code int, res *dto.CommandResult) error {
	body := serverutils.ErrorResponse(code, res.Error)
	body.Data = res
	return ctx.Status(code).JSON(body)
}
