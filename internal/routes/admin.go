package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/controllers"
	"medequip-system/internal/services"
	"medequip-system/pkg/middleware"
)

func runAdminRouter(g *echo.Group, adminService services.AdminServiceInterface, backupService services.BackupServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	adminCtrl := controllers.NewAdminController(adminService, backupService, logger)

	adminGroup := g.Group("/admin", authMW.RequireAdmin)
	{
		adminGroup.POST("/update-database", adminCtrl.UpdateDatabase)
		adminGroup.GET("/database-info", adminCtrl.GetDatabaseInfo)
		adminGroup.POST("/connect-sheets", adminCtrl.ConnectSheets)
		adminGroup.GET("/sheets-status", adminCtrl.GetSheetsStatus)
	}

	g.POST("/drive/backup", adminCtrl.TriggerBackup, authMW.RequireAdmin)
	g.GET("/drive/history", adminCtrl.GetBackupHistory, authMW.RequireAdmin)
}
