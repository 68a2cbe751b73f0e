package dto

import (
	"time"

	"medequip-system/internal/entities"
)

type CreateDailyCheckDTO struct {
	EquipmentID  uint64    `json:"equipmentId" validate:"required"`
	TechnicianID uint64    `json:"technicianId" validate:"required"`
	CheckDate    time.Time `json:"checkDate" validate:"required"`
	Status       string    `json:"status" validate:"required,check_status"`
	Notes        *string   `json:"notes"`
}

type DailyCheckDTO struct {
	entities.DailyCheck
	Equipment  *entities.Equipment `json:"equipment"`
	Technician *entities.User      `json:"technician"`
}

// DepartmentCoverageDTO is the per-department slice of the daily
// completion percentage.
type DepartmentCoverageDTO struct {
	Department string  `json:"department"`
	Total      int     `json:"total"`
	Checked    int     `json:"checked"`
	Percentage float64 `json:"percentage"`
}

type CoverageDTO struct {
	Date        string                  `json:"date"`
	Total       int                     `json:"total"`
	Checked     int                     `json:"checked"`
	Percentage  float64                 `json:"percentage"`
	Departments []DepartmentCoverageDTO `json:"departments"`
}
