package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Daily inspection outcomes.
const (
	CheckPass           = "pass"
	CheckFail           = "fail"
	CheckNeedsAttention = "needs_attention"
)

func IsValidCheckStatus(status string) bool {
	switch status {
	case CheckPass, CheckFail, CheckNeedsAttention:
		return true
	}
	return false
}

// DailyCheck is one inspection of one equipment item for one calendar day.
type DailyCheck struct {
	ID           uint64      `json:"id"`
	EquipmentID  uint64      `json:"equipmentId"`
	TechnicianID uint64      `json:"technicianId"`
	CheckDate    time.Time   `json:"checkDate"`
	Status       string      `json:"status"`
	Notes        null.String `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
}
