package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/listeners"
	"medequip-system/internal/repositories"
	"medequip-system/internal/services"
	"medequip-system/pkg/config"
	"medequip-system/pkg/eventbus"
	"medequip-system/pkg/middleware"
	"medequip-system/pkg/service"
	ws "medequip-system/pkg/websocket"
)

// InitRouter wires repositories, services and controllers and mounts
// every route group. The hub and bus are built in main and injected.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	hub *ws.Hub,
	bus *eventbus.Bus,
	backupService services.BackupServiceInterface,
	excelService services.ExcelServiceInterface,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	faultRepo := repositories.NewFaultReportRepository(dbConn, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)
	checkRepo := repositories.NewDailyCheckRepository(dbConn, logger)
	noteRepo := repositories.NewEquipmentNoteRepository(dbConn, logger)
	syncRepo := repositories.NewDriveSyncRepository(dbConn, logger)
	statsRepo := repositories.NewStatisticsRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient, logger)

	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	faultService := services.NewFaultReportService(faultRepo, equipmentRepo, userRepo, bus, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, equipmentRepo, userRepo, logger)
	checkService := services.NewDailyCheckService(checkRepo, equipmentRepo, userRepo, logger)
	noteService := services.NewEquipmentNoteService(noteRepo, equipmentRepo, userRepo, logger)
	statsService := services.NewStatisticsService(statsRepo, cacheRepo, logger)
	adminService := services.NewAdminService(syncRepo, logger)

	notificationListener := listeners.NewNotificationListener(hub, logger)
	notificationListener.Subscribe(bus)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, logger)
	runEquipmentRouter(secureGroup, equipmentService, noteService, logger)
	runFaultReportRouter(secureGroup, faultService, logger)
	runMaintenanceRouter(secureGroup, maintenanceService, logger)
	runDailyCheckRouter(secureGroup, checkService, logger)
	runStatisticsRouter(secureGroup, statsService, logger)
	runExportImportRouter(secureGroup, excelService, logger)
	runAdminRouter(secureGroup, adminService, backupService, authMW, logger)
	runWebSocketRouter(e, hub, jwtSvc, logger)

	logger.Info("routes mounted")
}
