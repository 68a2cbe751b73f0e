package services

import (
	"context"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
)

type EquipmentNoteServiceInterface interface {
	GetNotes(ctx context.Context, equipmentID uint64) ([]dto.EquipmentNoteDTO, error)
	CreateNote(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentNoteDTO) (*dto.EquipmentNoteDTO, error)
	DeleteNote(ctx context.Context, id uint64) error
}

type EquipmentNoteService struct {
	noteRepo      repositories.EquipmentNoteRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentNoteService(
	noteRepo repositories.EquipmentNoteRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) EquipmentNoteServiceInterface {
	return &EquipmentNoteService{
		noteRepo:      noteRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *EquipmentNoteService) GetNotes(ctx context.Context, equipmentID uint64) ([]dto.EquipmentNoteDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.GetNotesByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return s.enrichNotes(ctx, notes)
}

func (s *EquipmentNoteService) CreateNote(ctx context.Context, equipmentID uint64, payload dto.CreateEquipmentNoteDTO) (*dto.EquipmentNoteDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	created, err := s.noteRepo.CreateNote(ctx, equipmentID, payload)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrichNotes(ctx, []entities.EquipmentNote{*created})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (s *EquipmentNoteService) DeleteNote(ctx context.Context, id uint64) error {
	return s.noteRepo.DeleteNote(ctx, id)
}

func (s *EquipmentNoteService) enrichNotes(ctx context.Context, notes []entities.EquipmentNote) ([]dto.EquipmentNoteDTO, error) {
	userIDs := make([]uint64, 0, len(notes))
	seen := make(map[uint64]bool)
	for _, n := range notes {
		if !seen[n.CreatedBy] {
			seen[n.CreatedBy] = true
			userIDs = append(userIDs, n.CreatedBy)
		}
	}

	usersByID, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EquipmentNoteDTO, 0, len(notes))
	for _, n := range notes {
		item := dto.EquipmentNoteDTO{EquipmentNote: n}
		if u, ok := usersByID[n.CreatedBy]; ok {
			item.CreatedByUser = &u
		}
		result = append(result, item)
	}
	return result, nil
}
