package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Maintenance record types.
const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
	MaintenanceEmergency  = "emergency"
)

// Maintenance record statuses.
const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

var maintenanceTransitions = map[string][]string{
	MaintenancePending:    {MaintenanceInProgress, MaintenanceCompleted},
	MaintenanceInProgress: {MaintenanceCompleted},
	MaintenanceCompleted:  {},
}

func IsValidMaintenanceType(t string) bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceEmergency:
		return true
	}
	return false
}

func IsValidMaintenanceStatus(status string) bool {
	_, ok := maintenanceTransitions[status]
	return ok
}

func CanTransitionMaintenanceStatus(from, to string) bool {
	if from == to {
		return IsValidMaintenanceStatus(to)
	}
	for _, allowed := range maintenanceTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// MaintenanceRecord is one service event on one equipment item. Records
// are append-only; only status and completion fields may be corrected
// afterwards. Cost is stored in minor currency units.
type MaintenanceRecord struct {
	ID             uint64      `json:"id"`
	EquipmentID    uint64      `json:"equipmentId"`
	TechnicianID   uint64      `json:"technicianId"`
	Type           string      `json:"type"`
	Description    string      `json:"description"`
	PartsReplaced  []string    `json:"partsReplaced"`
	Cost           null.Int64  `json:"cost"`
	StartDate      time.Time   `json:"startDate"`
	CompletionDate *time.Time  `json:"completionDate"`
	Status         string      `json:"status"`
	Notes          null.String `json:"notes"`
	CreatedAt      time.Time   `json:"createdAt"`
}
