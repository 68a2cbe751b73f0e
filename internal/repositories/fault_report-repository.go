package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const faultReportSelectFields = "id, equipment_id, reported_by, assigned_to, title, description, priority, status, reported_at, resolved_at, resolution_notes, created_at"

type FaultReportRepositoryInterface interface {
	GetFaultReports(ctx context.Context, filter dto.FaultReportFilter) ([]entities.FaultReport, error)
	FindFaultReport(ctx context.Context, id uint64) (*entities.FaultReport, error)
	CreateFaultReport(ctx context.Context, report *entities.FaultReport) (*entities.FaultReport, error)
	UpdateFaultReport(ctx context.Context, id uint64, payload dto.UpdateFaultReportDTO, resolvedAt *time.Time) (*entities.FaultReport, error)
}

type FaultReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewFaultReportRepository(storage *pgxpool.Pool, logger *zap.Logger) FaultReportRepositoryInterface {
	return &FaultReportRepository{storage: storage, logger: logger}
}

func scanFaultReport(row pgx.Row) (*entities.FaultReport, error) {
	var fr entities.FaultReport
	err := row.Scan(
		&fr.ID, &fr.EquipmentID, &fr.ReportedBy, &fr.AssignedTo,
		&fr.Title, &fr.Description, &fr.Priority, &fr.Status,
		&fr.ReportedAt, &fr.ResolvedAt, &fr.ResolutionNotes, &fr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &fr, nil
}

func (r *FaultReportRepository) GetFaultReports(ctx context.Context, filter dto.FaultReportFilter) ([]entities.FaultReport, error) {
	builder := sq.Select(faultReportSelectFields).
		From("fault_reports").
		PlaceholderFormat(sq.Dollar).
		OrderBy("reported_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"priority": filter.Priority})
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

	var result []entities.FaultReport
	for rows.Next() {
		fr, err := scanFaultReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *fr)
	}
	return result, rows.Err()
}

func (r *FaultReportRepository) FindFaultReport(ctx context.Context, id uint64) (*entities.FaultReport, error) {
	query := "SELECT " + faultReportSelectFields + " FROM fault_reports WHERE id = $1"
	return scanFaultReport(r.storage.QueryRow(ctx, query, id))
}

func (r *FaultReportRepository) CreateFaultReport(ctx context.Context, report *entities.FaultReport) (*entities.FaultReport, error) {
	query := `
		INSERT INTO fault_reports (equipment_id, reported_by, title, description, priority, status, reported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + faultReportSelectFields

	return scanFaultReport(r.storage.QueryRow(ctx, query,
		report.EquipmentID, report.ReportedBy, report.Title, report.Description,
		report.Priority, report.Status, report.ReportedAt,
	))
}

func (r *FaultReportRepository) UpdateFaultReport(ctx context.Context, id uint64, payload dto.UpdateFaultReportDTO, resolvedAt *time.Time) (*entities.FaultReport, error) {
	builder := sq.Update("fault_reports").PlaceholderFormat(sq.Dollar).Where(sq.Eq{"id": id})

	changed := false
	if payload.AssignedTo != nil {
		builder = builder.Set("assigned_to", *payload.AssignedTo)
		changed = true
	}
	if payload.Title != nil {
		builder = builder.Set("title", *payload.Title)
		changed = true
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
		changed = true
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
		changed = true
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
		changed = true
	}
	if payload.ResolutionNotes != nil {
		builder = builder.Set("resolution_notes", *payload.ResolutionNotes)
		changed = true
	}
	if resolvedAt != nil {
		builder = builder.Set("resolved_at", *resolvedAt)
		changed = true
	}

	if !changed {
		return r.FindFaultReport(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + faultReportSelectFields).ToSql()
	if err != nil {
		return nil, err
	}
	return scanFaultReport(r.storage.QueryRow(ctx, query, args...))
}
