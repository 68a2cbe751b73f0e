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
)

func fleet(departments ...string) []entities.Equipment {
	var result []entities.Equipment
	for i, dept := range departments {
		result = append(result, entities.Equipment{ID: uint64(i + 1), Department: dept})
	}
	return result
}

func checkFor(equipmentID uint64) entities.DailyCheck {
	return entities.DailyCheck{EquipmentID: equipmentID, Status: entities.CheckPass, CreatedAt: time.Now()}
}

func TestBuildCoverageNoChecksIsZeroPercent(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	coverage := BuildCoverage(day, fleet("ICU", "ICU", "ER"), nil)

	assert.Equal(t, "2026-08-28", coverage.Date)
	assert.Equal(t, 3, coverage.Total)
	assert.Equal(t, 0, coverage.Checked)
	assert.Equal(t, 0.0, coverage.Percentage)
}

func TestBuildCoverageAllCheckedIsHundredPercent(t *testing.T) {
	day := time.Now()
	coverage := BuildCoverage(day, fleet("ICU", "ER"), []entities.DailyCheck{checkFor(1), checkFor(2)})

	assert.Equal(t, 100.0, coverage.Percentage)
	require.Len(t, coverage.Departments, 2)
	for _, dept := range coverage.Departments {
		assert.Equal(t, 100.0, dept.Percentage)
	}
}

func TestBuildCoverageEmptyFleet(t *testing.T) {
	coverage := BuildCoverage(time.Now(), nil, nil)
	assert.Equal(t, 0, coverage.Total)
	assert.Equal(t, 0.0, coverage.Percentage)
}

func TestBuildCoveragePerDepartment(t *testing.T) {
	// ICU has equipment 1 and 2, ER has equipment 3. Only 1 is checked,
	// twice; duplicates must not inflate the count.
	checks := []entities.DailyCheck{checkFor(1), checkFor(1)}
	coverage := BuildCoverage(time.Now(), fleet("ICU", "ICU", "ER"), checks)

	assert.Equal(t, 1, coverage.Checked)
	require.Len(t, coverage.Departments, 2)

	byDept := map[string]dto.DepartmentCoverageDTO{}
	for _, dept := range coverage.Departments {
		byDept[dept.Department] = dept
	}
	assert.Equal(t, 50.0, byDept["ICU"].Percentage)
	assert.Equal(t, 0.0, byDept["ER"].Percentage)
}

func TestBuildCoverageIgnoresUnknownEquipment(t *testing.T) {
	coverage := BuildCoverage(time.Now(), fleet("ICU"), []entities.DailyCheck{checkFor(42)})
	assert.Equal(t, 0, coverage.Checked)
}

func TestCreateDailyCheckUnknownEquipment(t *testing.T) {
	svc := NewDailyCheckService(newFakeCheckRepo(), newFakeEquipmentRepo(), newFakeUserRepo(), zap.NewNop())
	_, err := svc.CreateDailyCheck(context.Background(), dto.CreateDailyCheckDTO{
		EquipmentID: 404, TechnicianID: 1, CheckDate: time.Now(), Status: entities.CheckPass,
	})
	assert.Error(t, err)
}

func TestGetCoverageFromRepositories(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(
		entities.Equipment{ID: 1, Department: "ICU"},
		entities.Equipment{ID: 2, Department: "ICU"},
	)
	checkRepo := newFakeCheckRepo(checkFor(1))
	svc := NewDailyCheckService(checkRepo, equipmentRepo, newFakeUserRepo(), zap.NewNop())

	coverage, err := svc.GetCoverage(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, coverage.Total)
	assert.Equal(t, 1, coverage.Checked)
	assert.Equal(t, 50.0, coverage.Percentage)
}

func TestListChecksWithoutDateReturnsAll(t *testing.T) {
	old := checkFor(1)
	old.CreatedAt = time.Now().AddDate(0, 0, -3)
	today := checkFor(2)
	checkRepo := newFakeCheckRepo(old, today)
	equipmentRepo := newFakeEquipmentRepo(fleet("ICU", "ER")...)

	svc := NewDailyCheckService(checkRepo, equipmentRepo, newFakeUserRepo(), zap.NewNop())
	checks, err := svc.ListChecks(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, checks, 2)
}

func TestListChecksWithDateFiltersToThatDay(t *testing.T) {
	old := checkFor(1)
	old.CreatedAt = time.Now().AddDate(0, 0, -3)
	today := checkFor(2)
	checkRepo := newFakeCheckRepo(old, today)
	equipmentRepo := newFakeEquipmentRepo(fleet("ICU", "ER")...)

	svc := NewDailyCheckService(checkRepo, equipmentRepo, newFakeUserRepo(), zap.NewNop())
	day := time.Now()
	checks, err := svc.ListChecks(context.Background(), &day)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, uint64(2), checks[0].EquipmentID)
}
