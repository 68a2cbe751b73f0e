package dto

import "medequip-system/internal/entities"

type CreateFaultReportDTO struct {
	EquipmentID uint64 `json:"equipmentId" validate:"required"`
	ReportedBy  uint64 `json:"reportedBy" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,priority"`
}

// UpdateFaultReportDTO is a partial patch. Status changes are validated
// against the lifecycle transition table by the service.
type UpdateFaultReportDTO struct {
	AssignedTo      *uint64 `json:"assignedTo"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Priority        *string `json:"priority" validate:"omitempty,priority"`
	Status          *string `json:"status" validate:"omitempty,fault_status"`
	ResolutionNotes *string `json:"resolutionNotes"`
}

type FaultReportFilter struct {
	Status   string
	Priority string
}

// FaultReportDTO is the enriched read model: the report plus its joined
// equipment, reporter and assignee. Absent references stay nil.
type FaultReportDTO struct {
	entities.FaultReport
	Equipment      *entities.Equipment `json:"equipment"`
	ReportedByUser *entities.User      `json:"reportedByUser"`
	AssignedToUser *entities.User      `json:"assignedToUser"`
}
