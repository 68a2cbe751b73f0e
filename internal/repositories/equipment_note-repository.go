package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const equipmentNoteSelectFields = "id, equipment_id, created_by, note, type, priority, is_active, created_at"

type EquipmentNoteRepositoryInterface interface {
	GetNotesByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentNote, error)
	CreateNote(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentNoteDTO) (*entities.EquipmentNote, error)
	DeleteNote(ctx context.Context, id uint64) error
}

type EquipmentNoteRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentNoteRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentNoteRepositoryInterface {
	return &EquipmentNoteRepository{storage: storage, logger: logger}
}

func scanEquipmentNote(row pgx.Row) (*entities.EquipmentNote, error) {
	var n entities.EquipmentNote
	err := row.Scan(&n.ID, &n.EquipmentID, &n.CreatedBy, &n.Note, &n.Type, &n.Priority, &n.IsActive, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *EquipmentNoteRepository) GetNotesByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentNote, error) {
	query := "SELECT " + equipmentNoteSelectFields + " FROM equipment_notes WHERE equipment_id = $1 AND is_active = true ORDER BY created_at DESC"
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.EquipmentNote
	for rows.Next() {
		n, err := scanEquipmentNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	return result, rows.Err()
}

func (r *EquipmentNoteRepository) CreateNote(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentNoteDTO) (*entities.EquipmentNote, error) {
	query := `
		INSERT INTO equipment_notes (equipment_id, created_by, note, type, priority, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING ` + equipmentNoteSelectFields

	return scanEquipmentNote(r.storage.QueryRow(ctx, query,
		equipmentID, payload.CreatedBy, payload.Note, payload.Type, payload.Priority,
	))
}

// DeleteNote removes the row outright. Notes carry no history.
func (r *EquipmentNoteRepository) DeleteNote(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, "DELETE FROM equipment_notes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
