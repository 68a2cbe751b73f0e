package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

type EquipmentNoteController struct {
	noteService services.EquipmentNoteServiceInterface
	logger      *zap.Logger
}

func NewEquipmentNoteController(noteService services.EquipmentNoteServiceInterface, logger *zap.Logger) *EquipmentNoteController {
	return &EquipmentNoteController{noteService: noteService, logger: logger}
}

func (c *EquipmentNoteController) GetNotes(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.noteService.GetNotes(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment notes", http.StatusOK)
}

func (c *EquipmentNoteController) CreateNote(ctx echo.Context) error {
	equipmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentNoteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.noteService.CreateNote(ctx.Request().Context(), equipmentID, payload)
	if err != nil {
		c.logger.Error("failed to create equipment note", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "note created", http.StatusCreated)
}

func (c *EquipmentNoteController) DeleteNote(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.noteService.DeleteNote(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "note deleted", http.StatusOK)
}
