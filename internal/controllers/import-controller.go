package controllers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/services"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

const maxImportSize = 10 << 20 // 10MB

type ImportController struct {
	excelService services.ExcelServiceInterface
	logger       *zap.Logger
}

func NewImportController(excelService services.ExcelServiceInterface, logger *zap.Logger) *ImportController {
	return &ImportController{excelService: excelService, logger: logger}
}

func (c *ImportController) ImportEquipment(ctx echo.Context) error {
	return c.runImport(ctx, c.excelService.ImportEquipment)
}

func (c *ImportController) ImportMaintenance(ctx echo.Context) error {
	return c.runImport(ctx, c.excelService.ImportMaintenance)
}

func (c *ImportController) runImport(ctx echo.Context, importFn func(context.Context, io.Reader) (*dto.ImportResultDTO, error)) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "file field is required", err, nil), c.logger)
	}

	if err := validateImportFile(header); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	file, err := header.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	result, err := importFn(ctx.Request().Context(), io.LimitReader(file, maxImportSize))
	if err != nil {
		c.logger.Error("import failed", zap.String("file", header.Filename), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "could not read spreadsheet", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, result, "import finished", http.StatusOK)
}

func validateImportFile(header *multipart.FileHeader) error {
	if header.Size > maxImportSize {
		return apperrors.NewHttpError(http.StatusBadRequest, "file exceeds the 10MB limit", apperrors.ErrBadRequest, nil)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	validExt := ext == ".xlsx" || ext == ".xls"
	validType := contentType == xlsxContentType ||
		contentType == "application/vnd.ms-excel" ||
		contentType == "application/octet-stream"

	if !validExt || !validType {
		return apperrors.NewHttpError(http.StatusBadRequest, "only .xlsx and .xls files are accepted", apperrors.ErrBadRequest, map[string]string{
			"fileName":    header.Filename,
			"contentType": contentType,
		})
	}
	return nil
}
