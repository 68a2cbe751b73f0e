package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const dailyCheckSelectFields = "id, equipment_id, technician_id, check_date, status, notes, created_at"

type DailyCheckRepositoryInterface interface {
	GetChecks(ctx context.Context) ([]entities.DailyCheck, error)
	GetChecksForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entities.DailyCheck, error)
	CreateDailyCheck(ctx context.Context, payload dto.CreateDailyCheckDTO) (*entities.DailyCheck, error)
}

type DailyCheckRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDailyCheckRepository(storage *pgxpool.Pool, logger *zap.Logger) DailyCheckRepositoryInterface {
	return &DailyCheckRepository{storage: storage, logger: logger}
}

func scanDailyCheck(row pgx.Row) (*entities.DailyCheck, error) {
	var dc entities.DailyCheck
	err := row.Scan(&dc.ID, &dc.EquipmentID, &dc.TechnicianID, &dc.CheckDate, &dc.Status, &dc.Notes, &dc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &dc, nil
}

func (r *DailyCheckRepository) GetChecks(ctx context.Context) ([]entities.DailyCheck, error) {
	query := "SELECT " + dailyCheckSelectFields + " FROM daily_checks ORDER BY created_at DESC"
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.DailyCheck
	for rows.Next() {
		dc, err := scanDailyCheck(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dc)
	}
	return result, rows.Err()
}

// GetChecksForDay returns the checks recorded within the given window.
// The day is judged by when the check was recorded, not the reported
// check_date, so backdated entries do not alter closed days.
func (r *DailyCheckRepository) GetChecksForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entities.DailyCheck, error) {
	query := "SELECT " + dailyCheckSelectFields + " FROM daily_checks WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at DESC"
	rows, err := r.storage.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.DailyCheck
	for rows.Next() {
		dc, err := scanDailyCheck(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dc)
	}
	return result, rows.Err()
}

func (r *DailyCheckRepository) CreateDailyCheck(ctx context.Context, payload dto.CreateDailyCheckDTO) (*entities.DailyCheck, error) {
	query := `
		INSERT INTO daily_checks (equipment_id, technician_id, check_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + dailyCheckSelectFields

	return scanDailyCheck(r.storage.QueryRow(ctx, query,
		payload.EquipmentID, payload.TechnicianID, payload.CheckDate, payload.Status, payload.Notes,
	))
}
