package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runStatisticsRouter(g *echo.Group, statsService services.StatisticsServiceInterface, logger *zap.Logger) {
	statsCtrl := controllers.NewStatisticsController(statsService, logger)

	g.GET("/statistics", statsCtrl.GetStatistics)
}
