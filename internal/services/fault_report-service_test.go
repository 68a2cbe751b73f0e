package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/eventbus"
)

func newFaultService(faultRepo *fakeFaultRepo, equipmentRepo *fakeEquipmentRepo, userRepo *fakeUserRepo) FaultReportServiceInterface {
	return NewFaultReportService(faultRepo, equipmentRepo, userRepo, eventbus.New(zap.NewNop()), zap.NewNop())
}

func TestGetFaultReportsEnrichment(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 10, Name: "ventilator", Department: "ICU"})
	userRepo := newFakeUserRepo(entities.User{ID: 1, Name: "nurse"}, entities.User{ID: 2, Name: "tech"})

	assigned := entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Title: "no power", Priority: entities.PriorityHigh, Status: entities.FaultAssigned,
		ReportedAt: time.Now(),
	}
	assigned.AssignedTo.SetValid(2)
	faultRepo := newFakeFaultRepo(assigned)

	svc := newFaultService(faultRepo, equipmentRepo, userRepo)
	reports, err := svc.GetFaultReports(context.Background(), dto.FaultReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	require.NotNil(t, reports[0].Equipment)
	assert.Equal(t, "ventilator", reports[0].Equipment.Name)
	require.NotNil(t, reports[0].ReportedByUser)
	assert.Equal(t, "nurse", reports[0].ReportedByUser.Name)
	require.NotNil(t, reports[0].AssignedToUser)
	assert.Equal(t, "tech", reports[0].AssignedToUser.Name)
}

func TestGetFaultReportsToleratesMissingReferences(t *testing.T) {
	// Equipment 99 and user 77 do not exist; the row must still come back.
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 99, ReportedBy: 77,
		Title: "orphan", Priority: entities.PriorityLow, Status: entities.FaultOpen,
		ReportedAt: time.Now(),
	})

	svc := newFaultService(faultRepo, newFakeEquipmentRepo(), newFakeUserRepo())
	reports, err := svc.GetFaultReports(context.Background(), dto.FaultReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Nil(t, reports[0].Equipment)
	assert.Nil(t, reports[0].ReportedByUser)
	assert.Nil(t, reports[0].AssignedToUser)
}

func TestCreateFaultReportDefaults(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 10, Name: "monitor"})
	userRepo := newFakeUserRepo(entities.User{ID: 1, Name: "nurse"})
	faultRepo := newFakeFaultRepo()

	svc := newFaultService(faultRepo, equipmentRepo, userRepo)
	created, err := svc.CreateFaultReport(context.Background(), dto.CreateFaultReportDTO{
		EquipmentID: 10, ReportedBy: 1, Title: "screen dead", Description: "blank on boot",
		Priority: entities.PriorityCritical,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.FaultOpen, created.Status)
	assert.False(t, created.ReportedAt.IsZero())
	assert.Nil(t, created.ResolvedAt)
}

func TestCreateFaultReportUnknownEquipment(t *testing.T) {
	svc := newFaultService(newFakeFaultRepo(), newFakeEquipmentRepo(), newFakeUserRepo())
	_, err := svc.CreateFaultReport(context.Background(), dto.CreateFaultReportDTO{
		EquipmentID: 404, ReportedBy: 1, Title: "x", Description: "y", Priority: entities.PriorityLow,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateFaultReportRejectsInvalidTransition(t *testing.T) {
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Status: entities.FaultOpen, Priority: entities.PriorityLow, ReportedAt: time.Now(),
	})
	svc := newFaultService(faultRepo, newFakeEquipmentRepo(), newFakeUserRepo())

	resolved := entities.FaultResolved
	_, err := svc.UpdateFaultReport(context.Background(), 1, dto.UpdateFaultReportDTO{Status: &resolved})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// The stored report is untouched.
	current, err := faultRepo.FindFaultReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entities.FaultOpen, current.Status)
}

func TestUpdateFaultReportStampsResolvedAt(t *testing.T) {
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Status: entities.FaultInProgress, Priority: entities.PriorityHigh, ReportedAt: time.Now(),
	})
	svc := newFaultService(faultRepo, newFakeEquipmentRepo(), newFakeUserRepo())

	resolved := entities.FaultResolved
	notes := "replaced the fuse"
	updated, err := svc.UpdateFaultReport(context.Background(), 1, dto.UpdateFaultReportDTO{
		Status:          &resolved,
		ResolutionNotes: &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.FaultResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, notes, updated.ResolutionNotes.String)
}

func TestUpdateFaultReportRejectsUnknownAssignee(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 10, Name: "monitor"})
	userRepo := newFakeUserRepo(entities.User{ID: 1, Name: "nurse", IsActive: true})
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Title: "no power", Priority: entities.PriorityHigh, Status: entities.FaultOpen,
		ReportedAt: time.Now(),
	})

	svc := newFaultService(faultRepo, equipmentRepo, userRepo)
	assignee := uint64(42)
	status := entities.FaultAssigned
	_, err := svc.UpdateFaultReport(context.Background(), 1, dto.UpdateFaultReportDTO{
		Status:     &status,
		AssignedTo: &assignee,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	// the report must not have moved
	stored, err := faultRepo.FindFaultReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entities.FaultOpen, stored.Status)
	assert.False(t, stored.AssignedTo.Valid)
}

func TestUpdateFaultReportRejectsInactiveAssignee(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 10, Name: "monitor"})
	userRepo := newFakeUserRepo(
		entities.User{ID: 1, Name: "nurse", IsActive: true},
		entities.User{ID: 5, Name: "former tech", Role: entities.RoleTechnician, IsActive: false},
	)
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Title: "no power", Priority: entities.PriorityHigh, Status: entities.FaultOpen,
		ReportedAt: time.Now(),
	})

	svc := newFaultService(faultRepo, equipmentRepo, userRepo)
	assignee := uint64(5)
	_, err := svc.UpdateFaultReport(context.Background(), 1, dto.UpdateFaultReportDTO{AssignedTo: &assignee})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateFaultReportAssignsActiveUser(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 10, Name: "monitor"})
	userRepo := newFakeUserRepo(
		entities.User{ID: 1, Name: "nurse", IsActive: true},
		entities.User{ID: 2, Name: "tech", Role: entities.RoleTechnician, IsActive: true},
	)
	faultRepo := newFakeFaultRepo(entities.FaultReport{
		ID: 1, EquipmentID: 10, ReportedBy: 1,
		Title: "no power", Priority: entities.PriorityHigh, Status: entities.FaultOpen,
		ReportedAt: time.Now(),
	})

	svc := newFaultService(faultRepo, equipmentRepo, userRepo)
	assignee := uint64(2)
	status := entities.FaultAssigned
	updated, err := svc.UpdateFaultReport(context.Background(), 1, dto.UpdateFaultReportDTO{
		Status:     &status,
		AssignedTo: &assignee,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.FaultAssigned, updated.Status)
	require.NotNil(t, updated.AssignedToUser)
	assert.Equal(t, "tech", updated.AssignedToUser.Name)
}
