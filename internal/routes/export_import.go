package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
)

func runExportImportRouter(g *echo.Group, excelService services.ExcelServiceInterface, logger *zap.Logger) {
	exportCtrl := controllers.NewExportController(excelService, logger)
	importCtrl := controllers.NewImportController(excelService, logger)

	g.GET("/export/equipment", exportCtrl.ExportEquipment)
	g.GET("/export/maintenance", exportCtrl.ExportMaintenance)
	g.GET("/export/faults", exportCtrl.ExportFaultReports)
	g.GET("/export/project-zip", exportCtrl.ExportProjectZip)

	g.POST("/import/equipment", importCtrl.ImportEquipment)
	g.POST("/import/maintenance", importCtrl.ImportMaintenance)
}
