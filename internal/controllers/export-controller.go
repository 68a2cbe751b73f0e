package controllers

import (
	"archive/zip"
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medequip-system/internal/services"
	"medequip-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	excelService services.ExcelServiceInterface
	logger       *zap.Logger
}

func NewExportController(excelService services.ExcelServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{excelService: excelService, logger: logger}
}

func (c *ExportController) ExportEquipment(ctx echo.Context) error {
	return c.respondWithXLSX(ctx, "الأجهزة_الطبية.xlsx", c.excelService.ExportEquipment)
}

func (c *ExportController) ExportMaintenance(ctx echo.Context) error {
	return c.respondWithXLSX(ctx, "سجلات_الصيانة.xlsx", c.excelService.ExportMaintenance)
}

func (c *ExportController) ExportFaultReports(ctx echo.Context) error {
	return c.respondWithXLSX(ctx, "تقارير_الأعطال.xlsx", c.excelService.ExportFaultReports)
}

func (c *ExportController) respondWithXLSX(ctx echo.Context, fileName string, build func(context.Context) (*excelize.File, error)) error {
	f, err := build(ctx.Request().Context())
	if err != nil {
		c.logger.Error("export failed", zap.String("file", fileName), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	setAttachmentHeaders(ctx, xlsxContentType, fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

// ExportProjectZip bundles the three workbooks plus a short readme into
// one archive.
func (c *ExportController) ExportProjectZip(ctx echo.Context) error {
	exports := []struct {
		fileName string
		build    func(context.Context) (*excelize.File, error)
	}{
		{"الأجهزة_الطبية.xlsx", c.excelService.ExportEquipment},
		{"سجلات_الصيانة.xlsx", c.excelService.ExportMaintenance},
		{"تقارير_الأعطال.xlsx", c.excelService.ExportFaultReports},
	}

	setAttachmentHeaders(ctx, "application/zip", "نظام-إدارة-الأجهزة-الطبية.zip")
	ctx.Response().WriteHeader(http.StatusOK)

	zw := zip.NewWriter(ctx.Response().Writer)
	defer zw.Close()

	for _, export := range exports {
		f, err := export.build(ctx.Request().Context())
		if err != nil {
			c.logger.Error("project zip export failed", zap.String("file", export.fileName), zap.Error(err))
			return err
		}
		entry, err := zw.Create(export.fileName)
		if err != nil {
			return err
		}
		if err := f.Write(entry); err != nil {
			return err
		}
	}

	readme, err := zw.Create("README.md")
	if err != nil {
		return err
	}
	_, err = readme.Write([]byte("# نظام إدارة الأجهزة الطبية\n\nتصدير كامل لبيانات النظام: الأجهزة وسجلات الصيانة وتقارير الأعطال.\n"))
	return err
}

func setAttachmentHeaders(ctx echo.Context, contentType, fileName string) {
	ctx.Response().Header().Set(echo.HeaderContentType, contentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
}
