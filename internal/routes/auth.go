package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/logout", authCtrl.Logout)
	}
}
