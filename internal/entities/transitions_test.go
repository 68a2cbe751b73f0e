package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaultStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{FaultOpen, FaultAssigned, true},
		{FaultOpen, FaultInProgress, true},
		{FaultOpen, FaultClosed, true},
		{FaultOpen, FaultResolved, false},
		{FaultAssigned, FaultInProgress, true},
		{FaultAssigned, FaultOpen, true},
		{FaultAssigned, FaultClosed, false},
		{FaultInProgress, FaultResolved, true},
		{FaultInProgress, FaultAssigned, true},
		{FaultInProgress, FaultClosed, false},
		{FaultResolved, FaultClosed, true},
		{FaultResolved, FaultInProgress, true},
		{FaultResolved, FaultOpen, false},
		{FaultClosed, FaultOpen, false},
		{FaultClosed, FaultResolved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionFaultStatus(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestFaultStatusSameStatusIsNoOp(t *testing.T) {
	for _, status := range []string{FaultOpen, FaultAssigned, FaultInProgress, FaultResolved, FaultClosed} {
		assert.True(t, CanTransitionFaultStatus(status, status), status)
	}
	assert.False(t, CanTransitionFaultStatus("bogus", "bogus"))
}

func TestMaintenanceStatusTransitions(t *testing.T) {
	assert.True(t, CanTransitionMaintenanceStatus(MaintenancePending, MaintenanceInProgress))
	assert.True(t, CanTransitionMaintenanceStatus(MaintenancePending, MaintenanceCompleted))
	assert.True(t, CanTransitionMaintenanceStatus(MaintenanceInProgress, MaintenanceCompleted))
	assert.False(t, CanTransitionMaintenanceStatus(MaintenanceCompleted, MaintenanceInProgress))
	assert.False(t, CanTransitionMaintenanceStatus(MaintenanceCompleted, MaintenancePending))
	assert.False(t, CanTransitionMaintenanceStatus(MaintenanceInProgress, MaintenancePending))
}

func TestEnumMembership(t *testing.T) {
	assert.True(t, IsValidEquipmentStatus(EquipmentOperational))
	assert.False(t, IsValidEquipmentStatus("broken"))

	assert.True(t, IsValidPriority(PriorityCritical))
	assert.False(t, IsValidPriority("urgent"))

	assert.True(t, IsValidCheckStatus(CheckNeedsAttention))
	assert.False(t, IsValidCheckStatus("ok"))

	assert.True(t, IsValidNoteType(NoteWarning))
	assert.False(t, IsValidNoteType("misc"))

	// Note priority excludes critical.
	assert.True(t, IsValidNotePriority(PriorityHigh))
	assert.False(t, IsValidNotePriority(PriorityCritical))

	assert.True(t, IsValidRole(RoleNurse))
	assert.False(t, IsValidRole("superuser"))
}
