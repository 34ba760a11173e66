package controller

import (
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/serverutils"
	internalWS "vibe-notes-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IRealtimeController interface {
	RegisterRoutes(r fiber.Router)
	ServeWs(ctx *fiber.Ctx) error
}

type realtimeController struct {
	identity identity.Provider
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewRealtimeController(identityProvider identity.Provider, hub *internalWS.Hub, log logger.ILogger) IRealtimeController {
	return &realtimeController{
		identity: identityProvider,
		hub:      hub,
		logger:   log,
	}
}

func (c *realtimeController) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", c.ServeWs)
}

// ServeWs authenticates the handshake, then hands the connection to the hub.
// Browsers cannot set headers on a websocket, so the token query parameter
// is accepted too.
func (c *realtimeController) ServeWs(ctx *fiber.Ctx) error {
	caller, err := c.identity.CurrentCaller(ctx.Context(), serverutils.SessionToken(ctx))
	if err != nil {
		c.logger.Warn("Realtime", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return fiber.NewError(fiber.StatusUnauthorized, "authentication failed")
	}
	if caller == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}

	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	userID := caller.Id
	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("Realtime", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(c.hub, conn, userID)
		c.logger.Info("Realtime", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(ctx)
}
