package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
)

// Arabic labels used in the spreadsheets. Import accepts both the
// Arabic label and the raw enum value.
var (
	equipmentStatusLabels = map[string]string{
		entities.EquipmentOperational:  "يعمل",
		entities.EquipmentMaintenance:  "تحت الصيانة",
		entities.EquipmentOutOfService: "خارج الخدمة",
	}
	maintenanceTypeLabels = map[string]string{
		entities.MaintenancePreventive: "وقائية",
		entities.MaintenanceCorrective: "إصلاحية",
		entities.MaintenanceEmergency:  "طارئة",
	}
	maintenanceStatusLabels = map[string]string{
		entities.MaintenancePending:    "في الانتظار",
		entities.MaintenanceInProgress: "قيد التنفيذ",
		entities.MaintenanceCompleted:  "مكتمل",
	}
	priorityLabels = map[string]string{
		entities.PriorityLow:      "منخفض",
		entities.PriorityMedium:   "متوسط",
		entities.PriorityHigh:     "عالي",
		entities.PriorityCritical: "حرج",
	}
	faultStatusLabels = map[string]string{
		entities.FaultOpen:       "مفتوح",
		entities.FaultAssigned:   "معين",
		entities.FaultInProgress: "قيد المعالجة",
		entities.FaultResolved:   "تم الحل",
		entities.FaultClosed:     "مغلق",
	}
)

func toLabel(labels map[string]string, value string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}

func fromLabel(labels map[string]string, label string) string {
	for value, l := range labels {
		if l == label {
			return value
		}
	}
	return label
}

const excelDateFormat = "2006-01-02"

type ExcelServiceInterface interface {
	ExportEquipment(ctx context.Context) (*excelize.File, error)
	ExportMaintenance(ctx context.Context) (*excelize.File, error)
	ExportFaultReports(ctx context.Context) (*excelize.File, error)
	ImportEquipment(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
	ImportMaintenance(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
}

type ExcelService struct {
	equipmentRepo   repositories.EquipmentRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	faultRepo       repositories.FaultReportRepositoryInterface
	logger          *zap.Logger
}

func NewExcelService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	faultRepo repositories.FaultReportRepositoryInterface,
	logger *zap.Logger,
) ExcelServiceInterface {
	return &ExcelService{
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
		faultRepo:       faultRepo,
		logger:          logger,
	}
}

var equipmentHeaders = []interface{}{
	"رقم الجهاز", "اسم الجهاز", "الموديل", "الشركة المصنعة", "الرقم التسلسلي",
	"الباركود", "القسم", "الموقع", "الحالة", "تاريخ آخر صيانة",
	"تاريخ الصيانة القادمة", "تاريخ الشراء", "انتهاء الضمان", "المواصفات", "تاريخ الإدخال",
}

func (s *ExcelService) ExportEquipment(ctx context.Context) (*excelize.File, error) {
	equipments, err := s.equipmentRepo.GetEquipments(ctx)
	if err != nil {
		return nil, err
	}

	f, sheet := newSheet("الأجهزة الطبية", equipmentHeaders)
	for i, e := range equipments {
		specifications := ""
		if e.Specifications != nil {
			if raw, err := json.Marshal(e.Specifications); err == nil {
				specifications = string(raw)
			}
		}
		row := []interface{}{
			e.ID, e.Name, e.Model, e.Manufacturer, e.SerialNumber,
			e.Barcode, e.Department, e.Location, toLabel(equipmentStatusLabels, e.Status),
			formatDate(e.LastMaintenanceDate), formatDate(e.NextMaintenanceDate),
			formatDate(e.PurchaseDate), formatDate(e.WarrantyExpiry),
			specifications, e.CreatedAt.Format(excelDateFormat),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "H", 20)
	f.SetColWidth(sheet, "N", "N", 30)
	return f, nil
}

var maintenanceHeaders = []interface{}{
	"رقم السجل", "رقم الجهاز", "رقم الفني", "نوع الصيانة", "الوصف",
	"القطع المستبدلة", "التكلفة", "تاريخ البداية", "تاريخ الانتهاء", "الحالة",
	"ملاحظات", "تاريخ الإدخال",
}

func (s *ExcelService) ExportMaintenance(ctx context.Context) (*excelize.File, error) {
	records, err := s.maintenanceRepo.GetMaintenanceRecords(ctx, 0)
	if err != nil {
		return nil, err
	}

	f, sheet := newSheet("سجلات الصيانة", maintenanceHeaders)
	for i, m := range records {
		cost := ""
		if m.Cost.Valid {
			cost = fmt.Sprintf("%.2f", float64(m.Cost.Int64)/100)
		}
		parts := ""
		if len(m.PartsReplaced) > 0 {
			if raw, err := json.Marshal(m.PartsReplaced); err == nil {
				parts = string(raw)
			}
		}
		row := []interface{}{
			m.ID, m.EquipmentID, m.TechnicianID,
			toLabel(maintenanceTypeLabels, m.Type), m.Description,
			parts, cost, m.StartDate.Format(excelDateFormat), formatDate(m.CompletionDate),
			toLabel(maintenanceStatusLabels, m.Status), m.Notes.String,
			m.CreatedAt.Format(excelDateFormat),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "E", "E", 30)
	f.SetColWidth(sheet, "K", "K", 30)
	return f, nil
}

var faultReportHeaders = []interface{}{
	"رقم التقرير", "رقم الجهاز", "العنوان", "الوصف", "الأولوية",
	"الحالة", "تم الإبلاغ بواسطة", "تاريخ الإبلاغ", "تاريخ الحل", "ملاحظات الحل", "تاريخ الإدخال",
}

func (s *ExcelService) ExportFaultReports(ctx context.Context) (*excelize.File, error) {
	reports, err := s.faultRepo.GetFaultReports(ctx, dto.FaultReportFilter{})
	if err != nil {
		return nil, err
	}

	f, sheet := newSheet("تقارير الأعطال", faultReportHeaders)
	for i, r := range reports {
		row := []interface{}{
			r.ID, r.EquipmentID, r.Title, r.Description,
			toLabel(priorityLabels, r.Priority), toLabel(faultStatusLabels, r.Status),
			r.ReportedBy, r.ReportedAt.Format(excelDateFormat), formatDate(r.ResolvedAt),
			r.ResolutionNotes.String, r.CreatedAt.Format(excelDateFormat),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "C", "D", 35)
	f.SetColWidth(sheet, "J", "J", 30)
	return f, nil
}

func newSheet(name string, headers []interface{}) (*excelize.File, string) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", name)
	f.SetSheetRow(name, "A1", &headers)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(name, "A1", lastCell, style)
	return f, name
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(excelDateFormat)
}

// ImportEquipment reads the first sheet and creates one equipment row
// per data row. Bad rows are reported and skipped, never abort the batch.
func (s *ExcelService) ImportEquipment(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	columns := indexColumns(rows[0])
	result.Total = len(rows) - 1

	for i, row := range rows[1:] {
		rowNum := i + 2
		payload := dto.CreateEquipmentDTO{
			Name:         pick(columns, row, "اسم الجهاز", "name"),
			Model:        pick(columns, row, "الموديل", "model"),
			Manufacturer: pick(columns, row, "الشركة المصنعة", "manufacturer"),
			SerialNumber: pick(columns, row, "الرقم التسلسلي", "serialNumber"),
			Barcode:      pick(columns, row, "الباركود", "barcode"),
			Department:   pick(columns, row, "القسم", "department"),
			Location:     pick(columns, row, "الموقع", "location"),
			Status:       fromLabel(equipmentStatusLabels, pick(columns, row, "الحالة", "status")),
		}
		if payload.Status == "" {
			payload.Status = entities.EquipmentOperational
		}
		payload.LastMaintenanceDate = parseDate(pick(columns, row, "تاريخ آخر صيانة", "lastMaintenanceDate"))
		payload.NextMaintenanceDate = parseDate(pick(columns, row, "تاريخ الصيانة القادمة", "nextMaintenanceDate"))
		payload.PurchaseDate = parseDate(pick(columns, row, "تاريخ الشراء", "purchaseDate"))
		payload.WarrantyExpiry = parseDate(pick(columns, row, "انتهاء الضمان", "warrantyExpiry"))
		if raw := pick(columns, row, "المواصفات", "specifications"); raw != "" {
			var specs map[string]interface{}
			if json.Unmarshal([]byte(raw), &specs) == nil {
				payload.Specifications = specs
			}
		}

		if payload.Name == "" || payload.Model == "" || payload.Barcode == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("الصف %d: بيانات مطلوبة مفقودة (اسم الجهاز، الموديل، الباركود)", rowNum))
			continue
		}
		if !entities.IsValidEquipmentStatus(payload.Status) {
			result.Errors = append(result.Errors, fmt.Sprintf("الصف %d: حالة غير معروفة (%s)", rowNum, payload.Status))
			continue
		}

		if _, err := s.equipmentRepo.CreateEquipment(ctx, payload); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("الصف %d: %s", rowNum, err.Error()))
			continue
		}
		result.Success++
	}
	return result, nil
}

func (s *ExcelService) ImportMaintenance(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	columns := indexColumns(rows[0])
	result.Total = len(rows) - 1

	for i, row := range rows[1:] {
		rowNum := i + 2
		equipmentID, _ := strconv.ParseUint(pick(columns, row, "رقم الجهاز", "equipmentId"), 10, 64)
		technicianID, _ := strconv.ParseUint(pick(columns, row, "رقم الفني", "technicianId"), 10, 64)

		payload := dto.CreateMaintenanceRecordDTO{
			EquipmentID:  equipmentID,
			TechnicianID: technicianID,
			Type:         fromLabel(maintenanceTypeLabels, pick(columns, row, "نوع الصيانة", "type")),
			Description:  pick(columns, row, "الوصف", "description"),
			Status:       fromLabel(maintenanceStatusLabels, pick(columns, row, "الحالة", "status")),
		}
		if payload.Type == "" {
			payload.Type = entities.MaintenancePreventive
		}
		if payload.Status == "" {
			payload.Status = entities.MaintenancePending
		}
		if raw := pick(columns, row, "القطع المستبدلة", "partsReplaced"); raw != "" {
			var parts []string
			if json.Unmarshal([]byte(raw), &parts) == nil {
				payload.PartsReplaced = parts
			}
		}
		if raw := pick(columns, row, "التكلفة", "cost"); raw != "" {
			if amount, err := strconv.ParseFloat(raw, 64); err == nil {
				cost := int64(amount*100 + 0.5)
				payload.Cost = &cost
			}
		}
		if start := parseDate(pick(columns, row, "تاريخ البداية", "startDate")); start != nil {
			payload.StartDate = *start
		} else {
			payload.StartDate = time.Now()
		}
		payload.CompletionDate = parseDate(pick(columns, row, "تاريخ الانتهاء", "completionDate"))
		if notes := pick(columns, row, "ملاحظات", "notes"); notes != "" {
			payload.Notes = &notes
		}

		if payload.EquipmentID == 0 || payload.TechnicianID == 0 || payload.Description == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("الصف %d: بيانات مطلوبة مفقودة", rowNum))
			continue
		}

		if _, err := s.maintenanceRepo.CreateMaintenanceRecord(ctx, payload, payload.Status); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("الصف %d: %s", rowNum, err.Error()))
			continue
		}
		result.Success++
	}
	return result, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// pick returns the first non-empty cell among the named columns.
func pick(columns map[string]int, row []string, names ...string) string {
	for _, name := range names {
		if idx, ok := columns[name]; ok && idx < len(row) {
			if value := strings.TrimSpace(row[idx]); value != "" {
				return value
			}
		}
	}
	return ""
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{excelDateFormat, "02/01/2006", "01-02-06", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
