package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEquipment struct {
	Name         string
	Model        string
	Manufacturer string
	SerialNumber string
	Barcode      string
	Department   string
	Location     string
	Status       string
}

var sampleEquipment = []seedEquipment{
	{"جهاز تنفس صناعي", "PB980", "Medtronic", "SN-PB980-001", "EQ-1001", "العناية المركزة", "غرفة 101", "operational"},
	{"جهاز مراقبة القلب", "IntelliVue MX450", "Philips", "SN-MX450-014", "EQ-1002", "العناية المركزة", "غرفة 102", "operational"},
	{"جهاز أشعة سينية متنقل", "Mobilett Elara", "Siemens", "SN-ELARA-007", "EQ-1003", "الأشعة", "الطابق الأول", "maintenance"},
	{"مضخة حقن", "Alaris GH", "BD", "SN-ALGH-221", "EQ-1004", "الجراحة", "غرفة العمليات 2", "operational"},
	{"جهاز تخطيط القلب", "MAC 2000", "GE Healthcare", "SN-MAC-119", "EQ-1005", "الطوارئ", "قسم الاستقبال", "out_of_service"},
}

func seedEquipmentItems(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("seeding equipment...")

	query := `INSERT INTO equipment (name, model, manufacturer, serial_number, barcode, department, location, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (barcode) DO NOTHING`

	for _, e := range sampleEquipment {
		if _, err := db.Exec(ctx, query, e.Name, e.Model, e.Manufacturer, e.SerialNumber, e.Barcode, e.Department, e.Location, e.Status); err != nil {
			return err
		}
	}
	return nil
}
