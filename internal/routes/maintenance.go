package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runMaintenanceRouter(g *echo.Group, maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) {
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)

	g.GET("/maintenance-records", maintenanceCtrl.GetMaintenanceRecords)
	g.POST("/maintenance-records", maintenanceCtrl.CreateMaintenanceRecord)
	g.PATCH("/maintenance-records/:id", maintenanceCtrl.UpdateMaintenanceRecord)
}
