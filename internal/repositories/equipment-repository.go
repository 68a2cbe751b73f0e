package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const equipmentSelectFields = "id, name, model, manufacturer, serial_number, barcode, department, location, status, last_maintenance_date, next_maintenance_date, purchase_date, warranty_expiry, specifications, created_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentByBarcode(ctx context.Context, barcode string) (*entities.Equipment, error)
	FindEquipmentsByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Model, &e.Manufacturer, &e.SerialNumber, &e.Barcode,
		&e.Department, &e.Location, &e.Status,
		&e.LastMaintenanceDate, &e.NextMaintenanceDate,
		&e.PurchaseDate, &e.WarrantyExpiry,
		&e.Specifications, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query := "SELECT " + equipmentSelectFields + " FROM equipment ORDER BY id"
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := "SELECT " + equipmentSelectFields + " FROM equipment WHERE id = $1"
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindEquipmentByBarcode(ctx context.Context, barcode string) (*entities.Equipment, error) {
	query := "SELECT " + equipmentSelectFields + " FROM equipment WHERE barcode = $1"
	return scanEquipment(r.storage.QueryRow(ctx, query, barcode))
}

func (r *EquipmentRepository) FindEquipmentsByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.Equipment, error) {
	result := make(map[uint64]entities.Equipment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := "SELECT " + equipmentSelectFields + " FROM equipment WHERE id = ANY($1)"
	rows, err := r.storage.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result[e.ID] = *e
	}
	return result, rows.Err()
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query := `
		INSERT INTO equipment (name, model, manufacturer, serial_number, barcode, department, location, status,
			last_maintenance_date, next_maintenance_date, purchase_date, warranty_expiry, specifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + equipmentSelectFields

	return scanEquipment(r.storage.QueryRow(ctx, query,
		payload.Name, payload.Model, payload.Manufacturer, payload.SerialNumber, payload.Barcode,
		payload.Department, payload.Location, payload.Status,
		payload.LastMaintenanceDate, payload.NextMaintenanceDate,
		payload.PurchaseDate, payload.WarrantyExpiry, payload.Specifications,
	))
}

// UpdateEquipment merges only the fields present in the patch.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := sq.Update("equipment").PlaceholderFormat(sq.Dollar).Where(sq.Eq{"id": id})

	set := func(column string, value interface{}) {
		builder = builder.Set(column, value)
	}

	changed := false
	if payload.Name != nil {
		set("name", *payload.Name)
		changed = true
	}
	if payload.Model != nil {
		set("model", *payload.Model)
		changed = true
	}
	if payload.Manufacturer != nil {
		set("manufacturer", *payload.Manufacturer)
		changed = true
	}
	if payload.SerialNumber != nil {
		set("serial_number", *payload.SerialNumber)
		changed = true
	}
	if payload.Barcode != nil {
		set("barcode", *payload.Barcode)
		changed = true
	}
	if payload.Department != nil {
		set("department", *payload.Department)
		changed = true
	}
	if payload.Location != nil {
		set("location", *payload.Location)
		changed = true
	}
	if payload.Status != nil {
		set("status", *payload.Status)
		changed = true
	}
	if payload.LastMaintenanceDate != nil {
		set("last_maintenance_date", *payload.LastMaintenanceDate)
		changed = true
	}
	if payload.NextMaintenanceDate != nil {
		set("next_maintenance_date", *payload.NextMaintenanceDate)
		changed = true
	}
	if payload.PurchaseDate != nil {
		set("purchase_date", *payload.PurchaseDate)
		changed = true
	}
	if payload.WarrantyExpiry != nil {
		set("warranty_expiry", *payload.WarrantyExpiry)
		changed = true
	}
	if payload.Specifications != nil {
		set("specifications", payload.Specifications)
		changed = true
	}

	if !changed {
		return r.FindEquipment(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + equipmentSelectFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}
