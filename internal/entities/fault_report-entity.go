package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Fault report lifecycle statuses.
const (
	FaultOpen       = "open"
	FaultAssigned   = "assigned"
	FaultInProgress = "in_progress"
	FaultResolved   = "resolved"
	FaultClosed     = "closed"
)

// Fault report priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// faultTransitions is the allowed-transition table. closed is terminal;
// resolved reports may be reopened to in_progress before closing.
var faultTransitions = map[string][]string{
	FaultOpen:       {FaultAssigned, FaultInProgress, FaultClosed},
	FaultAssigned:   {FaultInProgress, FaultOpen},
	FaultInProgress: {FaultResolved, FaultAssigned},
	FaultResolved:   {FaultClosed, FaultInProgress},
	FaultClosed:     {},
}

func IsValidFaultStatus(status string) bool {
	_, ok := faultTransitions[status]
	return ok
}

// CanTransitionFaultStatus reports whether moving from one status to
// another is allowed. Setting the same status again is a no-op and
// always permitted.
func CanTransitionFaultStatus(from, to string) bool {
	if from == to {
		return IsValidFaultStatus(to)
	}
	for _, allowed := range faultTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type FaultReport struct {
	ID              uint64      `json:"id"`
	EquipmentID     uint64      `json:"equipmentId"`
	ReportedBy      uint64      `json:"reportedBy"`
	AssignedTo      null.Uint64 `json:"assignedTo"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Priority        string      `json:"priority"`
	Status          string      `json:"status"`
	ReportedAt      time.Time   `json:"reportedAt"`
	ResolvedAt      *time.Time  `json:"resolvedAt"`
	ResolutionNotes null.String `json:"resolutionNotes"`
	CreatedAt       time.Time   `json:"createdAt"`
}
