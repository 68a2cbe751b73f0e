package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid id parameter", err, map[string]interface{}{"param": ctx.Param(name)})
	}
	return id, nil
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	res, err := c.equipmentService.GetEquipments(ctx.Request().Context())
	if err != nil {
		c.logger.Error("failed to list equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment list", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.GetEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment found", http.StatusOK)
}

func (c *EquipmentController) FindEquipmentByBarcode(ctx echo.Context) error {
	barcode := ctx.Param("code")
	res, err := c.equipmentService.GetEquipmentByBarcode(ctx.Request().Context(), barcode)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment found", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment updated", http.StatusOK)
}
