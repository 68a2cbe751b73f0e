package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/utils"
)

type DailyCheckServiceInterface interface {
	ListChecks(ctx context.Context, day *time.Time) ([]dto.DailyCheckDTO, error)
	CreateDailyCheck(ctx context.Context, payload dto.CreateDailyCheckDTO) (*dto.DailyCheckDTO, error)
	GetCoverage(ctx context.Context, day time.Time) (*dto.CoverageDTO, error)
}

type DailyCheckService struct {
	checkRepo     repositories.DailyCheckRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewDailyCheckService(
	checkRepo repositories.DailyCheckRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) DailyCheckServiceInterface {
	return &DailyCheckService{
		checkRepo:     checkRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// ListChecks returns the checks for one day when a day is given, or the
// full history otherwise.
func (s *DailyCheckService) ListChecks(ctx context.Context, day *time.Time) ([]dto.DailyCheckDTO, error) {
	var checks []entities.DailyCheck
	var err error
	if day != nil {
		dayStart, dayEnd := utils.DayWindow(*day)
		checks, err = s.checkRepo.GetChecksForDay(ctx, dayStart, dayEnd)
	} else {
		checks, err = s.checkRepo.GetChecks(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.enrichChecks(ctx, checks)
}

func (s *DailyCheckService) CreateDailyCheck(ctx context.Context, payload dto.CreateDailyCheckDTO) (*dto.DailyCheckDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	created, err := s.checkRepo.CreateDailyCheck(ctx, payload)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrichChecks(ctx, []entities.DailyCheck{*created})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// GetCoverage reports how much of the fleet was inspected on the given
// day, overall and per department. An equipment item counts as checked
// once, no matter how many checks it received.
func (s *DailyCheckService) GetCoverage(ctx context.Context, day time.Time) (*dto.CoverageDTO, error) {
	dayStart, dayEnd := utils.DayWindow(day)

	equipments, err := s.equipmentRepo.GetEquipments(ctx)
	if err != nil {
		return nil, err
	}
	checks, err := s.checkRepo.GetChecksForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return BuildCoverage(dayStart, equipments, checks), nil
}

// BuildCoverage computes the coverage summary from a fleet and the
// day's checks. Checks for unknown equipment are ignored.
func BuildCoverage(day time.Time, equipments []entities.Equipment, checks []entities.DailyCheck) *dto.CoverageDTO {
	departmentByID := make(map[uint64]string, len(equipments))
	totalByDept := make(map[string]int)
	var departments []string
	for _, e := range equipments {
		departmentByID[e.ID] = e.Department
		if totalByDept[e.Department] == 0 {
			departments = append(departments, e.Department)
		}
		totalByDept[e.Department]++
	}

	checkedIDs := make(map[uint64]bool)
	checkedByDept := make(map[string]int)
	for _, c := range checks {
		dept, known := departmentByID[c.EquipmentID]
		if !known || checkedIDs[c.EquipmentID] {
			continue
		}
		checkedIDs[c.EquipmentID] = true
		checkedByDept[dept]++
	}

	coverage := &dto.CoverageDTO{
		Date:        day.Format("2006-01-02"),
		Total:       len(equipments),
		Checked:     len(checkedIDs),
		Departments: make([]dto.DepartmentCoverageDTO, 0, len(departments)),
	}
	coverage.Percentage = percentage(coverage.Checked, coverage.Total)

	for _, dept := range departments {
		coverage.Departments = append(coverage.Departments, dto.DepartmentCoverageDTO{
			Department: dept,
			Total:      totalByDept[dept],
			Checked:    checkedByDept[dept],
			Percentage: percentage(checkedByDept[dept], totalByDept[dept]),
		})
	}
	return coverage
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func (s *DailyCheckService) enrichChecks(ctx context.Context, checks []entities.DailyCheck) ([]dto.DailyCheckDTO, error) {
	equipmentIDs := make([]uint64, 0, len(checks))
	userIDs := make([]uint64, 0, len(checks))
	seenEquipment := make(map[uint64]bool)
	seenUsers := make(map[uint64]bool)

	for _, c := range checks {
		if !seenEquipment[c.EquipmentID] {
			seenEquipment[c.EquipmentID] = true
			equipmentIDs = append(equipmentIDs, c.EquipmentID)
		}
		if !seenUsers[c.TechnicianID] {
			seenUsers[c.TechnicianID] = true
			userIDs = append(userIDs, c.TechnicianID)
		}
	}

	equipmentByID, err := s.equipmentRepo.FindEquipmentsByIDs(ctx, equipmentIDs)
	if err != nil {
		return nil, err
	}
	usersByID, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DailyCheckDTO, 0, len(checks))
	for _, c := range checks {
		item := dto.DailyCheckDTO{DailyCheck: c}
		if e, ok := equipmentByID[c.EquipmentID]; ok {
			item.Equipment = &e
		}
		if u, ok := usersByID[c.TechnicianID]; ok {
			item.Technician = &u
		}
		result = append(result, item)
	}
	return result, nil
}
