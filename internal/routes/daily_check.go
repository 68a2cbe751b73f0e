package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runDailyCheckRouter(g *echo.Group, checkService services.DailyCheckServiceInterface, logger *zap.Logger) {
	checkCtrl := controllers.NewDailyCheckController(checkService, logger)

	g.GET("/daily-checks", checkCtrl.ListChecks)
	g.POST("/daily-checks", checkCtrl.CreateDailyCheck)
	g.GET("/daily-checks/coverage", checkCtrl.GetCoverage)
}
