package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

type DailyCheckController struct {
	checkService services.DailyCheckServiceInterface
	logger       *zap.Logger
}

func NewDailyCheckController(checkService services.DailyCheckServiceInterface, logger *zap.Logger) *DailyCheckController {
	return &DailyCheckController{checkService: checkService, logger: logger}
}

func (c *DailyCheckController) ListChecks(ctx echo.Context) error {
	var day *time.Time
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err, nil), c.logger)
		}
		day = &parsed
	}

	res, err := c.checkService.ListChecks(ctx.Request().Context(), day)
	if err != nil {
		c.logger.Error("failed to list daily checks", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "daily checks", http.StatusOK)
}

func (c *DailyCheckController) CreateDailyCheck(ctx echo.Context) error {
	var payload dto.CreateDailyCheckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkService.CreateDailyCheck(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create daily check", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "daily check recorded", http.StatusCreated)
}

func (c *DailyCheckController) GetCoverage(ctx echo.Context) error {
	day := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err, nil), c.logger)
		}
		day = parsed
	}

	res, err := c.checkService.GetCoverage(ctx.Request().Context(), day)
	if err != nil {
		c.logger.Error("failed to compute coverage", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "daily check coverage", http.StatusOK)
}
