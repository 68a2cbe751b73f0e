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

const maintenanceSelectFields = "id, equipment_id, technician_id, type, description, parts_replaced, cost, start_date, completion_date, status, notes, created_at"

type MaintenanceRepositoryInterface interface {
	GetMaintenanceRecords(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRecord, error)
	FindMaintenanceRecord(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error)
	CreateMaintenanceRecord(ctx context.Context, payload dto.CreateMaintenanceRecordDTO, status string) (*entities.MaintenanceRecord, error)
	UpdateMaintenanceRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRecordDTO) (*entities.MaintenanceRecord, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

func scanMaintenanceRecord(row pgx.Row) (*entities.MaintenanceRecord, error) {
	var m entities.MaintenanceRecord
	err := row.Scan(
		&m.ID, &m.EquipmentID, &m.TechnicianID, &m.Type, &m.Description,
		&m.PartsReplaced, &m.Cost, &m.StartDate, &m.CompletionDate,
		&m.Status, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetMaintenanceRecords lists the ledger, newest first. A zero
// equipmentID means no equipment filter.
func (r *MaintenanceRepository) GetMaintenanceRecords(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRecord, error) {
	builder := sq.Select(maintenanceSelectFields).
		From("maintenance_records").
		PlaceholderFormat(sq.Dollar).
		OrderBy("start_date DESC")

	if equipmentID != 0 {
		builder = builder.Where(sq.Eq{"equipment_id": equipmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.MaintenanceRecord
	for rows.Next() {
		m, err := scanMaintenanceRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

func (r *MaintenanceRepository) FindMaintenanceRecord(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error) {
	query := "SELECT " + maintenanceSelectFields + " FROM maintenance_records WHERE id = $1"
	return scanMaintenanceRecord(r.storage.QueryRow(ctx, query, id))
}

func (r *MaintenanceRepository) CreateMaintenanceRecord(ctx context.Context, payload dto.CreateMaintenanceRecordDTO, status string) (*entities.MaintenanceRecord, error) {
	query := `
		INSERT INTO maintenance_records (equipment_id, technician_id, type, description, parts_replaced, cost, start_date, completion_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + maintenanceSelectFields

	return scanMaintenanceRecord(r.storage.QueryRow(ctx, query,
		payload.EquipmentID, payload.TechnicianID, payload.Type, payload.Description,
		payload.PartsReplaced, payload.Cost, payload.StartDate, payload.CompletionDate,
		status, payload.Notes,
	))
}

func (r *MaintenanceRepository) UpdateMaintenanceRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRecordDTO) (*entities.MaintenanceRecord, error) {
	builder := sq.Update("maintenance_records").PlaceholderFormat(sq.Dollar).Where(sq.Eq{"id": id})

	changed := false
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		changed = true
	}
	if payload.CompletionDate != nil {
		builder = builder.Set("completion_date", *payload.CompletionDate)
		changed = true
	}
	if payload.Cost != nil {
		builder = builder.Set("cost", *payload.Cost)
		changed = true
	}
	if payload.Notes != nil {
		builder = builder.Set("notes", *payload.Notes)
		changed = true
	}

	if !changed {
		return r.FindMaintenanceRecord(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + maintenanceSelectFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanMaintenanceRecord(r.storage.QueryRow(ctx, query, args...))
}
