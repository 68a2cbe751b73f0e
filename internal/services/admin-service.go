package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	"medequip-system/pkg/config"
	apperrors "medequip-system/pkg/errors"
)

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

type AdminServiceInterface interface {
	UpdateDatabaseURL(ctx context.Context, payload dto.UpdateDatabaseDTO) error
	GetDatabaseInfo(ctx context.Context) (*dto.DatabaseInfoDTO, error)
	ConnectSheets(ctx context.Context, payload dto.ConnectSheetsDTO) (string, error)
	GetSheetsStatus(ctx context.Context) (*dto.SheetsStatusDTO, error)
}

type AdminService struct {
	syncRepo repositories.DriveSyncRepositoryInterface
	logger   *zap.Logger
}

func NewAdminService(syncRepo repositories.DriveSyncRepositoryInterface, logger *zap.Logger) AdminServiceInterface {
	return &AdminService{syncRepo: syncRepo, logger: logger}
}

// UpdateDatabaseURL rewrites DATABASE_URL in the .env file. The new
// connection takes effect on restart; the running pool is left alone.
func (s *AdminService) UpdateDatabaseURL(ctx context.Context, payload dto.UpdateDatabaseDTO) error {
	if !strings.HasPrefix(payload.DatabaseURL, "postgresql://") && !strings.HasPrefix(payload.DatabaseURL, "postgres://") {
		return apperrors.NewHttpError(400, "invalid PostgreSQL URL format", apperrors.ErrBadRequest, nil)
	}

	content, err := os.ReadFile(config.EnvFilePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	lines := strings.Split(string(content), "\n")
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, "DATABASE_URL=") {
			lines[i] = "DATABASE_URL=" + payload.DatabaseURL
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, "DATABASE_URL="+payload.DatabaseURL)
	}

	if err := os.WriteFile(config.EnvFilePath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return err
	}
	os.Setenv("DATABASE_URL", payload.DatabaseURL)

	s.logger.Info("database URL updated, restart required")
	return nil
}

func (s *AdminService) GetDatabaseInfo(ctx context.Context) (*dto.DatabaseInfoDTO, error) {
	return &dto.DatabaseInfoDTO{
		DatabaseURL: MaskDSN(os.Getenv("DATABASE_URL")),
		Connected:   true,
		Provider:    "PostgreSQL",
	}, nil
}

// MaskDSN hides the credential section of a connection string.
func MaskDSN(dsn string) string {
	if len(dsn) <= 30 {
		return "غير محدد"
	}
	return dsn[:15] + "***" + dsn[len(dsn)-10:]
}

// ConnectSheets validates a Google Sheets URL, extracts the sheet id
// and records the connection as a pending export sync.
func (s *AdminService) ConnectSheets(ctx context.Context, payload dto.ConnectSheetsDTO) (string, error) {
	match := sheetIDPattern.FindStringSubmatch(payload.SheetsURL)
	if match == nil {
		return "", apperrors.NewHttpError(400, "invalid Google Sheets URL", apperrors.ErrBadRequest, nil)
	}
	sheetID := match[1]

	_, err := s.syncRepo.CreateSyncRecord(ctx, &entities.DriveSync{
		FileName:     fmt.Sprintf("sheets-%s", sheetID),
		DriveFileID:  sheetID,
		LastSyncTime: time.Now(),
		SyncType:     entities.SyncExport,
		Status:       entities.SyncPending,
	})
	if err != nil {
		return "", err
	}
	return sheetID, nil
}

func (s *AdminService) GetSheetsStatus(ctx context.Context) (*dto.SheetsStatusDTO, error) {
	latest, err := s.syncRepo.FindLatestByType(ctx, entities.SyncExport)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.SheetsStatusDTO{Connected: false, Message: "No Google Sheets connected"}, nil
		}
		return nil, err
	}

	lastSync := latest.LastSyncTime.Format(time.RFC3339)
	return &dto.SheetsStatusDTO{
		Connected: true,
		SheetID:   &latest.DriveFileID,
		LastSync:  &lastSync,
		Message:   "Google Sheets connected",
	}, nil
}
