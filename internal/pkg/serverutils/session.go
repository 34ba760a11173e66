package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "session"

// SessionToken returns the caller's session token from the Authorization
// header, the session cookie or the token query parameter, in that order.
// An empty string means no session was presented.
func SessionToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie := ctx.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	return ctx.Query("token")
}

// WantsHTML reports whether the request came from a browser form rather
// than an API client.
func WantsHTML(ctx *fiber.Ctx) bool {
	contentType := string(ctx.Request().Header.ContentType())
	if strings.HasPrefix(contentType, fiber.MIMEApplicationForm) || strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return true
	}
	return ctx.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMETextHTML && ctx.Get(fiber.HeaderAccept) != ""
}
