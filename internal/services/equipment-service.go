package services

import (
	"context"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	GetEquipmentByBarcode(ctx context.Context, barcode string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) GetEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) GetEquipmentByBarcode(ctx context.Context, barcode string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipmentByBarcode(ctx, barcode)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return s.equipmentRepo.CreateEquipment(ctx, payload)
}

// UpdateEquipment applies a partial patch. Status is only checked for
// enum membership; any status may move to any other.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return nil, err
	}
	return s.equipmentRepo.UpdateEquipment(ctx, id, payload)
}
