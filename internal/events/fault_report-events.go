package events

import "medequip-system/internal/dto"

const (
	FaultReportCreatedName = "fault_report.created"
	FaultReportUpdatedName = "fault_report.updated"
)

// FaultReportCreatedEvent fires after a new report is persisted. The
// payload is the enriched read model so listeners never hit the database.
type FaultReportCreatedEvent struct {
	Report dto.FaultReportDTO
}

func (e FaultReportCreatedEvent) Name() string { return FaultReportCreatedName }

type FaultReportUpdatedEvent struct {
	Report dto.FaultReportDTO
}

func (e FaultReportUpdatedEvent) Name() string { return FaultReportUpdatedName }
