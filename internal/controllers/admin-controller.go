package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

type AdminController struct {
	adminService  services.AdminServiceInterface
	backupService services.BackupServiceInterface
	logger        *zap.Logger
}

func NewAdminController(adminService services.AdminServiceInterface, backupService services.BackupServiceInterface, logger *zap.Logger) *AdminController {
	return &AdminController{adminService: adminService, backupService: backupService, logger: logger}
}

func (c *AdminController) UpdateDatabase(ctx echo.Context) error {
	var payload dto.UpdateDatabaseDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.adminService.UpdateDatabaseURL(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("failed to update database URL", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]interface{}{
		"restartRequired": true,
	}, "database URL updated", http.StatusOK)
}

func (c *AdminController) GetDatabaseInfo(ctx echo.Context) error {
	res, err := c.adminService.GetDatabaseInfo(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "database info", http.StatusOK)
}

func (c *AdminController) ConnectSheets(ctx echo.Context) error {
	var payload dto.ConnectSheetsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	sheetID, err := c.adminService.ConnectSheets(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"sheetId": sheetID}, "Google Sheets connected", http.StatusOK)
}

func (c *AdminController) GetSheetsStatus(ctx echo.Context) error {
	res, err := c.adminService.GetSheetsStatus(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "sheets status", http.StatusOK)
}

func (c *AdminController) TriggerBackup(ctx echo.Context) error {
	records, err := c.backupService.RunBackup(ctx.Request().Context())
	if err != nil {
		c.logger.Error("manual backup failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, records, "backup completed", http.StatusOK)
}

func (c *AdminController) GetBackupHistory(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	records, err := c.backupService.GetHistory(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, records, "backup history", http.StatusOK)
}
