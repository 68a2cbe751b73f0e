package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"medequip-system/internal/repositories"
	"medequip-system/internal/routes"
	"medequip-system/internal/services"
	"medequip-system/pkg/config"
	"medequip-system/pkg/customvalidator"
	"medequip-system/pkg/database/postgresql"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/eventbus"
	"medequip-system/pkg/filestorage"
	applogger "medequip-system/pkg/logger"
	appmw "medequip-system/pkg/middleware"
	"medequip-system/pkg/service"
	"medequip-system/pkg/utils"
	ws "medequip-system/pkg/websocket"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(appmw.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	ctx := context.Background()

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	hub := ws.NewHub(logger)
	go hub.Run()

	bus := eventbus.New(logger)

	backupStorage, err := filestorage.NewLocalFileStorage(cfg.Backup.Dir)
	if err != nil {
		logger.Fatal("failed to create backup storage", zap.Error(err))
	}

	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)
	faultRepo := repositories.NewFaultReportRepository(dbConn, logger)
	syncRepo := repositories.NewDriveSyncRepository(dbConn, logger)

	excelService := services.NewExcelService(equipmentRepo, maintenanceRepo, faultRepo, logger)
	backupService := services.NewBackupService(excelService, syncRepo, backupStorage, logger)
	go backupService.Start(ctx, cfg.Backup.Hour)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, hub, bus, backupService, excelService, cfg, logger)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
