package services

import (
	"context"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
)

type MaintenanceServiceInterface interface {
	GetMaintenanceRecords(ctx context.Context, equipmentID uint64) ([]dto.MaintenanceRecordDTO, error)
	CreateMaintenanceRecord(ctx context.Context, payload dto.CreateMaintenanceRecordDTO) (*dto.MaintenanceRecordDTO, error)
	UpdateMaintenanceRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRecordDTO) (*dto.MaintenanceRecordDTO, error)
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		equipmentRepo:   equipmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetMaintenanceRecords(ctx context.Context, equipmentID uint64) ([]dto.MaintenanceRecordDTO, error) {
	records, err := s.maintenanceRepo.GetMaintenanceRecords(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return s.enrichMaintenanceRecords(ctx, records)
}

// CreateMaintenanceRecord appends to the ledger. It never touches the
// equipment's maintenance dates; those are set explicitly through the
// equipment patch endpoint.
func (s *MaintenanceService) CreateMaintenanceRecord(ctx context.Context, payload dto.CreateMaintenanceRecordDTO) (*dto.MaintenanceRecordDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	status := payload.Status
	if status == "" {
		status = entities.MaintenancePending
	}

	created, err := s.maintenanceRepo.CreateMaintenanceRecord(ctx, payload, status)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichMaintenanceRecords(ctx, []entities.MaintenanceRecord{*created})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (s *MaintenanceService) UpdateMaintenanceRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRecordDTO) (*dto.MaintenanceRecordDTO, error) {
	current, err := s.maintenanceRepo.FindMaintenanceRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Status != nil && !entities.CanTransitionMaintenanceStatus(current.Status, *payload.Status) {
		return nil, apperrors.NewHttpError(400, "invalid status transition", apperrors.ErrInvalidTransition, map[string]string{
			"from": current.Status,
			"to":   *payload.Status,
		})
	}

	updated, err := s.maintenanceRepo.UpdateMaintenanceRecord(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichMaintenanceRecords(ctx, []entities.MaintenanceRecord{*updated})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (s *MaintenanceService) enrichMaintenanceRecords(ctx context.Context, records []entities.MaintenanceRecord) ([]dto.MaintenanceRecordDTO, error) {
	equipmentIDs := make([]uint64, 0, len(records))
	userIDs := make([]uint64, 0, len(records))
	seenEquipment := make(map[uint64]bool)
	seenUsers := make(map[uint64]bool)

	for _, m := range records {
		if !seenEquipment[m.EquipmentID] {
			seenEquipment[m.EquipmentID] = true
			equipmentIDs = append(equipmentIDs, m.EquipmentID)
		}
		if !seenUsers[m.TechnicianID] {
			seenUsers[m.TechnicianID] = true
			userIDs = append(userIDs, m.TechnicianID)
		}
	}

	equipmentByID, err := s.equipmentRepo.FindEquipmentsByIDs(ctx, equipmentIDs)
	if err != nil {
		return nil, err
	}
	usersByID, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MaintenanceRecordDTO, 0, len(records))
	for _, m := range records {
		item := dto.MaintenanceRecordDTO{MaintenanceRecord: m}
		if e, ok := equipmentByID[m.EquipmentID]; ok {
			item.Equipment = &e
		}
		if u, ok := usersByID[m.TechnicianID]; ok {
			item.Technician = &u
		}
		result = append(result, item)
	}
	return result, nil
}
