package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runFaultReportRouter(g *echo.Group, faultService services.FaultReportServiceInterface, logger *zap.Logger) {
	faultCtrl := controllers.NewFaultReportController(faultService, logger)

	g.GET("/fault-reports", faultCtrl.GetFaultReports)
	g.GET("/fault-reports/:id", faultCtrl.FindFaultReport)
	g.POST("/fault-reports", faultCtrl.CreateFaultReport)
	g.PATCH("/fault-reports/:id", faultCtrl.UpdateFaultReport)
}
