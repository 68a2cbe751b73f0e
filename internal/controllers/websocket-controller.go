package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/pkg/service"
	appwebsocket "medequip-system/pkg/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub        *appwebsocket.Hub
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, jwtService service.JWTService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{hub: hub, jwtService: jwtService, logger: logger}
}

// ServeWs upgrades the connection. Identity and role come from the
// token query parameter; the socket itself carries no trusted claims.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	tokenString := ctx.QueryParam("token")
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "missing token")
	}

	claims, err := c.jwtService.ValidateToken(tokenString)
	if err != nil || claims.IsRefreshToken {
		return ctx.String(http.StatusUnauthorized, "invalid token")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn, claims.UserID, claims.Role, c.logger)
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("websocket client connected",
		zap.Uint64("userId", claims.UserID),
		zap.String("role", claims.Role),
	)
	return nil
}
