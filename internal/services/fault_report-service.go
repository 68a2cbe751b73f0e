package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/events"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/eventbus"
)

type FaultReportServiceInterface interface {
	GetFaultReports(ctx context.Context, filter dto.FaultReportFilter) ([]dto.FaultReportDTO, error)
	GetFaultReport(ctx context.Context, id uint64) (*dto.FaultReportDTO, error)
	CreateFaultReport(ctx context.Context, payload dto.CreateFaultReportDTO) (*dto.FaultReportDTO, error)
	UpdateFaultReport(ctx context.Context, id uint64, payload dto.UpdateFaultReportDTO) (*dto.FaultReportDTO, error)
}

type FaultReportService struct {
	faultRepo     repositories.FaultReportRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewFaultReportService(
	faultRepo repositories.FaultReportRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) FaultReportServiceInterface {
	return &FaultReportService{
		faultRepo:     faultRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		bus:           bus,
		logger:        logger,
	}
}

func (s *FaultReportService) GetFaultReports(ctx context.Context, filter dto.FaultReportFilter) ([]dto.FaultReportDTO, error) {
	reports, err := s.faultRepo.GetFaultReports(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.enrichFaultReports(ctx, reports)
}

func (s *FaultReportService) GetFaultReport(ctx context.Context, id uint64) (*dto.FaultReportDTO, error) {
	report, err := s.faultRepo.FindFaultReport(ctx, id)
	if err != nil {
		return nil, err
	}
	enriched, err := s.enrichFaultReports(ctx, []entities.FaultReport{*report})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

func (s *FaultReportService) CreateFaultReport(ctx context.Context, payload dto.CreateFaultReportDTO) (*dto.FaultReportDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	report := &entities.FaultReport{
		EquipmentID: payload.EquipmentID,
		ReportedBy:  payload.ReportedBy,
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    payload.Priority,
		Status:      entities.FaultOpen,
		ReportedAt:  time.Now(),
	}

	created, err := s.faultRepo.CreateFaultReport(ctx, report)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichFaultReports(ctx, []entities.FaultReport{*created})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.FaultReportCreatedEvent{Report: enriched[0]})
	return &enriched[0], nil
}

func (s *FaultReportService) UpdateFaultReport(ctx context.Context, id uint64, payload dto.UpdateFaultReportDTO) (*dto.FaultReportDTO, error) {
	current, err := s.faultRepo.FindFaultReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.AssignedTo != nil {
		assignee, err := s.userRepo.FindUser(ctx, *payload.AssignedTo)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewHttpError(400, "assignee does not exist", apperrors.ErrBadRequest, map[string]uint64{
					"assignedTo": *payload.AssignedTo,
				})
			}
			return nil, err
		}
		if !assignee.IsActive {
			return nil, apperrors.NewHttpError(400, "assignee is not active", apperrors.ErrBadRequest, map[string]uint64{
				"assignedTo": *payload.AssignedTo,
			})
		}
	}

	var resolvedAt *time.Time
	if payload.Status != nil {
		if !entities.CanTransitionFaultStatus(current.Status, *payload.Status) {
			return nil, apperrors.NewHttpError(400, "invalid status transition", apperrors.ErrInvalidTransition, map[string]string{
				"from": current.Status,
				"to":   *payload.Status,
			})
		}
		if *payload.Status == entities.FaultResolved && current.Status != entities.FaultResolved {
			now := time.Now()
			resolvedAt = &now
		}
	}

	updated, err := s.faultRepo.UpdateFaultReport(ctx, id, payload, resolvedAt)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichFaultReports(ctx, []entities.FaultReport{*updated})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.FaultReportUpdatedEvent{Report: enriched[0]})
	return &enriched[0], nil
}

// enrichFaultReports joins equipment and users in two batched lookups.
// A dangling reference leaves the field nil rather than failing the list.
func (s *FaultReportService) enrichFaultReports(ctx context.Context, reports []entities.FaultReport) ([]dto.FaultReportDTO, error) {
	equipmentIDs := make([]uint64, 0, len(reports))
	userIDs := make([]uint64, 0, len(reports)*2)
	seenEquipment := make(map[uint64]bool)
	seenUsers := make(map[uint64]bool)

	for _, r := range reports {
		if !seenEquipment[r.EquipmentID] {
			seenEquipment[r.EquipmentID] = true
			equipmentIDs = append(equipmentIDs, r.EquipmentID)
		}
		if !seenUsers[r.ReportedBy] {
			seenUsers[r.ReportedBy] = true
			userIDs = append(userIDs, r.ReportedBy)
		}
		if r.AssignedTo.Valid && !seenUsers[r.AssignedTo.Uint64] {
			seenUsers[r.AssignedTo.Uint64] = true
			userIDs = append(userIDs, r.AssignedTo.Uint64)
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

	result := make([]dto.FaultReportDTO, 0, len(reports))
	for _, r := range reports {
		item := dto.FaultReportDTO{FaultReport: r}
		if e, ok := equipmentByID[r.EquipmentID]; ok {
			item.Equipment = &e
		}
		if u, ok := usersByID[r.ReportedBy]; ok {
			item.ReportedByUser = &u
		}
		if r.AssignedTo.Valid {
			if u, ok := usersByID[r.AssignedTo.Uint64]; ok {
				item.AssignedToUser = &u
			}
		}
		result = append(result, item)
	}
	return result, nil
}
