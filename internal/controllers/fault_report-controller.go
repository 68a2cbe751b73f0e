package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

type FaultReportController struct {
	faultService services.FaultReportServiceInterface
	logger       *zap.Logger
}

func NewFaultReportController(faultService services.FaultReportServiceInterface, logger *zap.Logger) *FaultReportController {
	return &FaultReportController{faultService: faultService, logger: logger}
}

func (c *FaultReportController) GetFaultReports(ctx echo.Context) error {
	filter := dto.FaultReportFilter{
		Status:   ctx.QueryParam("status"),
		Priority: ctx.QueryParam("priority"),
	}

	res, err := c.faultService.GetFaultReports(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list fault reports", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "fault reports", http.StatusOK)
}

func (c *FaultReportController) FindFaultReport(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.faultService.GetFaultReport(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "fault report found", http.StatusOK)
}

func (c *FaultReportController) CreateFaultReport(ctx echo.Context) error {
	var payload dto.CreateFaultReportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.faultService.CreateFaultReport(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create fault report", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "fault report created", http.StatusCreated)
}

func (c *FaultReportController) UpdateFaultReport(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateFaultReportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.faultService.UpdateFaultReport(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "fault report updated", http.StatusOK)
}
