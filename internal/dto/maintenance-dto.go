package dto

import (
	"time"

	"medequip-system/internal/entities"
)

type CreateMaintenanceRecordDTO struct {
	EquipmentID    uint64     `json:"equipmentId" validate:"required"`
	TechnicianID   uint64     `json:"technicianId" validate:"required"`
	Type           string     `json:"type" validate:"required,maintenance_type"`
	Description    string     `json:"description" validate:"required"`
	PartsReplaced  []string   `json:"partsReplaced"`
	Cost           *int64     `json:"cost"`
	StartDate      time.Time  `json:"startDate" validate:"required"`
	CompletionDate *time.Time `json:"completionDate"`
	Status         string     `json:"status" validate:"omitempty,maintenance_status"`
	Notes          *string    `json:"notes"`
}

type UpdateMaintenanceRecordDTO struct {
	Status         *string    `json:"status" validate:"omitempty,maintenance_status"`
	CompletionDate *time.Time `json:"completionDate"`
	Cost           *int64     `json:"cost"`
	Notes          *string    `json:"notes"`
}

type MaintenanceRecordDTO struct {
	entities.MaintenanceRecord
	Equipment  *entities.Equipment `json:"equipment"`
	Technician *entities.User      `json:"technician"`
}
