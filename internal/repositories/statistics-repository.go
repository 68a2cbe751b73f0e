package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
)

type StatisticsRepositoryInterface interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error)
}

type StatisticsRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewStatisticsRepository(storage *pgxpool.Pool, logger *zap.Logger) StatisticsRepositoryInterface {
	return &StatisticsRepository{storage: storage, logger: logger}
}

// GetStatistics aggregates the dashboard counters in two queries: the
// equipment fleet breakdown and the unresolved fault pressure. A report
// counts as open until it reaches resolved or closed.
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	var stats dto.StatisticsDTO

	equipmentQuery := `
		SELECT COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM equipment`

	err := r.storage.QueryRow(ctx, equipmentQuery,
		entities.EquipmentOperational, entities.EquipmentMaintenance, entities.EquipmentOutOfService,
	).Scan(&stats.Operational, &stats.Maintenance, &stats.OutOfService)
	if err != nil {
		return nil, err
	}

	faultQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE priority = $1),
			COUNT(*) FILTER (WHERE priority = $2)
		FROM fault_reports
		WHERE status NOT IN ($3, $4)`

	err = r.storage.QueryRow(ctx, faultQuery,
		entities.PriorityCritical, entities.PriorityHigh,
		entities.FaultResolved, entities.FaultClosed,
	).Scan(&stats.OpenReports, &stats.CriticalReports, &stats.HighPriorityReports)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
