package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/filestorage"
)

type BackupServiceInterface interface {
	RunBackup(ctx context.Context) ([]entities.DriveSync, error)
	Start(ctx context.Context, hour int)
	GetHistory(ctx context.Context, limit int) ([]entities.DriveSync, error)
}

type BackupService struct {
	excelService ExcelServiceInterface
	syncRepo     repositories.DriveSyncRepositoryInterface
	storage      filestorage.FileStorageInterface
	logger       *zap.Logger
}

func NewBackupService(
	excelService ExcelServiceInterface,
	syncRepo repositories.DriveSyncRepositoryInterface,
	storage filestorage.FileStorageInterface,
	logger *zap.Logger,
) BackupServiceInterface {
	return &BackupService{
		excelService: excelService,
		syncRepo:     syncRepo,
		storage:      storage,
		logger:       logger,
	}
}

// RunBackup snapshots the three workbooks into a dated directory and
// records one drive_sync row per file, failed exports included.
func (s *BackupService) RunBackup(ctx context.Context) ([]entities.DriveSync, error) {
	day := time.Now().Format("2006-01-02")
	exports := []struct {
		fileName string
		build    func(context.Context) (*excelize.File, error)
	}{
		{"الأجهزة_الطبية.xlsx", s.excelService.ExportEquipment},
		{"سجلات_الصيانة.xlsx", s.excelService.ExportMaintenance},
		{"تقارير_الأعطال.xlsx", s.excelService.ExportFaultReports},
	}

	var records []entities.DriveSync
	for _, export := range exports {
		status := entities.SyncCompleted
		if err := s.snapshotOne(ctx, day, export.fileName, export.build); err != nil {
			s.logger.Error("backup export failed",
				zap.String("file", export.fileName),
				zap.Error(err),
			)
			status = entities.SyncFailed
		}

		record, err := s.syncRepo.CreateSyncRecord(ctx, &entities.DriveSync{
			FileName:     export.fileName,
			DriveFileID:  uuid.NewString(),
			LastSyncTime: time.Now(),
			SyncType:     entities.SyncBackup,
			Status:       status,
		})
		if err != nil {
			return records, err
		}
		records = append(records, *record)
	}
	return records, nil
}

func (s *BackupService) snapshotOne(ctx context.Context, day, fileName string, build func(context.Context) (*excelize.File, error)) error {
	f, err := build(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return err
	}
	_, err = s.storage.Save(filepath.Join(day, fileName), &buf)
	return err
}

// Start runs the daily snapshot loop: a minute ticker that fires once
// when the configured hour first comes around each day.
func (s *BackupService) Start(ctx context.Context, hour int) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastRun string
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			day := now.Format("2006-01-02")
			if now.Hour() != hour || lastRun == day {
				continue
			}
			lastRun = day
			s.logger.Info("starting scheduled backup", zap.String("day", day))
			if _, err := s.RunBackup(ctx); err != nil {
				s.logger.Error(fmt.Sprintf("scheduled backup failed for %s", day), zap.Error(err))
			}
		}
	}
}

func (s *BackupService) GetHistory(ctx context.Context, limit int) ([]entities.DriveSync, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.syncRepo.GetSyncHistory(ctx, limit)
}
