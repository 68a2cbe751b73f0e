package entities

import "time"

// Equipment note types.
const (
	NoteGeneral     = "general"
	NoteIssue       = "issue"
	NoteMaintenance = "maintenance"
	NoteWarning     = "warning"
)

func IsValidNoteType(t string) bool {
	switch t {
	case NoteGeneral, NoteIssue, NoteMaintenance, NoteWarning:
		return true
	}
	return false
}

func IsValidNotePriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// EquipmentNote is a free-text annotation on an equipment item. Listing
// only surfaces active notes; deletion removes the row outright.
type EquipmentNote struct {
	ID          uint64    `json:"id"`
	EquipmentID uint64    `json:"equipmentId"`
	CreatedBy   uint64    `json:"createdBy"`
	Note        string    `json:"note"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
