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

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetMaintenanceRecords(ctx echo.Context) error {
	var equipmentID uint64
	if raw := ctx.QueryParam("equipmentId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		equipmentID = parsed
	}

	res, err := c.maintenanceService.GetMaintenanceRecords(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("failed to list maintenance records", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance records", http.StatusOK)
}

func (c *MaintenanceController) CreateMaintenanceRecord(ctx echo.Context) error {
	var payload dto.CreateMaintenanceRecordDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.CreateMaintenanceRecord(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create maintenance record", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance record created", http.StatusCreated)
}

func (c *MaintenanceController) UpdateMaintenanceRecord(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaintenanceRecordDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.UpdateMaintenanceRecord(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance record updated", http.StatusOK)
}
