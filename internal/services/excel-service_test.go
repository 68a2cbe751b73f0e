package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
)

func newExcelService(equipmentRepo *fakeEquipmentRepo, maintenanceRepo *fakeMaintenanceRepo, faultRepo *fakeFaultRepo) ExcelServiceInterface {
	return NewExcelService(equipmentRepo, maintenanceRepo, faultRepo, zap.NewNop())
}

func buildWorkbook(t *testing.T, header []interface{}, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportEquipmentCountsGoodAndBadRows(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	svc := newExcelService(equipmentRepo, newFakeMaintenanceRepo(), newFakeFaultRepo())

	header := []interface{}{"اسم الجهاز", "الموديل", "الباركود", "الحالة", "القسم", "الموقع", "الشركة المصنعة", "الرقم التسلسلي"}
	rows := [][]interface{}{
		{"جهاز تنفس", "PB980", "EQ-1", "يعمل", "ICU", "101", "Medtronic", "SN-1"},
		{"جهاز مراقبة", "MX450", "EQ-2", "تحت الصيانة", "ICU", "102", "Philips", "SN-2"},
		{"", "X100", "EQ-3", "يعمل", "ER", "103", "GE", "SN-3"},     // missing name
		{"مضخة حقن", "GH", "", "يعمل", "OR", "104", "BD", "SN-4"},   // missing barcode
		{"جهاز أشعة", "Elara", "EQ-5", "", "الأشعة", "105", "Siemens", "SN-5"},
	}

	result, err := svc.ImportEquipment(context.Background(), buildWorkbook(t, header, rows))
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Success)
	require.Len(t, result.Errors, 2)
	for _, msg := range result.Errors {
		assert.True(t, strings.HasPrefix(msg, "الصف "), msg)
	}
	assert.Contains(t, result.Errors[0], "الصف 4")
	assert.Contains(t, result.Errors[1], "الصف 5")
}

func TestImportEquipmentParsesArabicLabels(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	svc := newExcelService(equipmentRepo, newFakeMaintenanceRepo(), newFakeFaultRepo())

	header := []interface{}{"اسم الجهاز", "الموديل", "الباركود", "الحالة"}
	rows := [][]interface{}{
		{"جهاز", "M1", "EQ-9", "خارج الخدمة"},
	}

	result, err := svc.ImportEquipment(context.Background(), buildWorkbook(t, header, rows))
	require.NoError(t, err)
	require.Equal(t, 1, result.Success)

	created, err := equipmentRepo.FindEquipmentByBarcode(context.Background(), "EQ-9")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentOutOfService, created.Status)
}

func TestImportEquipmentDefaultsStatusToOperational(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	svc := newExcelService(equipmentRepo, newFakeMaintenanceRepo(), newFakeFaultRepo())

	header := []interface{}{"name", "model", "barcode"}
	rows := [][]interface{}{{"Pump", "GH", "EQ-7"}}

	result, err := svc.ImportEquipment(context.Background(), buildWorkbook(t, header, rows))
	require.NoError(t, err)
	require.Equal(t, 1, result.Success)

	created, err := equipmentRepo.FindEquipmentByBarcode(context.Background(), "EQ-7")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentOperational, created.Status)
}

func TestExportImportEquipmentRoundTrip(t *testing.T) {
	source := newFakeEquipmentRepo(
		entities.Equipment{ID: 1, Name: "جهاز تنفس", Model: "PB980", Manufacturer: "Medtronic", SerialNumber: "SN-1", Barcode: "EQ-100", Department: "ICU", Location: "101", Status: entities.EquipmentOperational},
		entities.Equipment{ID: 2, Name: "جهاز مراقبة", Model: "MX450", Manufacturer: "Philips", SerialNumber: "SN-2", Barcode: "EQ-200", Department: "ER", Location: "102", Status: entities.EquipmentMaintenance},
	)
	exporter := newExcelService(source, newFakeMaintenanceRepo(), newFakeFaultRepo())

	f, err := exporter.ExportEquipment(context.Background())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	target := newFakeEquipmentRepo()
	importer := newExcelService(target, newFakeMaintenanceRepo(), newFakeFaultRepo())
	result, err := importer.ImportEquipment(context.Background(), &buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Empty(t, result.Errors)

	for _, barcode := range []string{"EQ-100", "EQ-200"} {
		_, err := target.FindEquipmentByBarcode(context.Background(), barcode)
		assert.NoError(t, err, barcode)
	}
	restored, err := target.FindEquipmentByBarcode(context.Background(), "EQ-200")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentMaintenance, restored.Status)
}

func TestImportMaintenanceValidation(t *testing.T) {
	maintenanceRepo := newFakeMaintenanceRepo()
	svc := newExcelService(newFakeEquipmentRepo(), maintenanceRepo, newFakeFaultRepo())

	header := []interface{}{"رقم الجهاز", "رقم الفني", "الوصف", "نوع الصيانة", "التكلفة"}
	rows := [][]interface{}{
		{"1", "2", "تغيير فلتر", "وقائية", "150.50"},
		{"", "2", "بدون جهاز", "وقائية", ""}, // missing equipment id
	}

	result, err := svc.ImportMaintenance(context.Background(), buildWorkbook(t, header, rows))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Success)
	require.Len(t, result.Errors, 1)

	records, err := maintenanceRepo.GetMaintenanceRecords(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entities.MaintenancePreventive, records[0].Type)
	assert.Equal(t, int64(15050), records[0].Cost.Int64)
}

func TestExportFaultReportsUsesArabicLabels(t *testing.T) {
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 1, ReportedBy: 1, Title: "عطل", Description: "توقف",
		Priority: entities.PriorityCritical, Status: entities.FaultOpen,
	})
	svc := newExcelService(newFakeEquipmentRepo(), newFakeMaintenanceRepo(), faultRepo)

	f, err := svc.ExportFaultReports(context.Background())
	require.NoError(t, err)

	rows, err := f.GetRows("تقارير الأعطال")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "حرج")
	assert.Contains(t, rows[1], "مفتوح")
}
