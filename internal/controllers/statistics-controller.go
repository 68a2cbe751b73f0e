package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

type StatisticsController struct {
	statsService services.StatisticsServiceInterface
	logger       *zap.Logger
}

func NewStatisticsController(statsService services.StatisticsServiceInterface, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{statsService: statsService, logger: logger}
}

func (c *StatisticsController) GetStatistics(ctx echo.Context) error {
	res, err := c.statsService.GetStatistics(ctx.Request().Context())
	if err != nil {
		c.logger.Error("failed to compute statistics", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "statistics", http.StatusOK)
}
