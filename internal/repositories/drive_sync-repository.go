package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const driveSyncSelectFields = "id, file_name, drive_file_id, last_sync_time, sync_type, status, created_at"

type DriveSyncRepositoryInterface interface {
	GetSyncHistory(ctx context.Context, limit int) ([]entities.DriveSync, error)
	FindLatestByType(ctx context.Context, syncType string) (*entities.DriveSync, error)
	CreateSyncRecord(ctx context.Context, sync *entities.DriveSync) (*entities.DriveSync, error)
}

type DriveSyncRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDriveSyncRepository(storage *pgxpool.Pool, logger *zap.Logger) DriveSyncRepositoryInterface {
	return &DriveSyncRepository{storage: storage, logger: logger}
}

func scanDriveSync(row pgx.Row) (*entities.DriveSync, error) {
	var ds entities.DriveSync
	err := row.Scan(&ds.ID, &ds.FileName, &ds.DriveFileID, &ds.LastSyncTime, &ds.SyncType, &ds.Status, &ds.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &ds, nil
}

func (r *DriveSyncRepository) GetSyncHistory(ctx context.Context, limit int) ([]entities.DriveSync, error) {
	query := "SELECT " + driveSyncSelectFields + " FROM drive_sync ORDER BY last_sync_time DESC LIMIT $1"
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.DriveSync
	for rows.Next() {
		ds, err := scanDriveSync(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ds)
	}
	return result, rows.Err()
}

func (r *DriveSyncRepository) FindLatestByType(ctx context.Context, syncType string) (*entities.DriveSync, error) {
	query := "SELECT " + driveSyncSelectFields + " FROM drive_sync WHERE sync_type = $1 ORDER BY last_sync_time DESC LIMIT 1"
	return scanDriveSync(r.storage.QueryRow(ctx, query, syncType))
}

func (r *DriveSyncRepository) CreateSyncRecord(ctx context.Context, sync *entities.DriveSync) (*entities.DriveSync, error) {
	query := `
		INSERT INTO drive_sync (file_name, drive_file_id, last_sync_time, sync_type, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + driveSyncSelectFields

	return scanDriveSync(r.storage.QueryRow(ctx, query,
		sync.FileName, sync.DriveFileID, sync.LastSyncTime, sync.SyncType, sync.Status,
	))
}
