package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/pkg/service"
	ws "medequip-system/pkg/websocket"
)

func runWebSocketRouter(e *echo.Echo, hub *ws.Hub, jwtSvc service.JWTService, logger *zap.Logger) {
	wsCtrl := controllers.NewWebSocketController(hub, jwtSvc, logger)

	e.GET("/ws", wsCtrl.ServeWs)
}
