package entities

import "time"

// Drive sync kinds and outcomes.
const (
	SyncExport = "export"
	SyncImport = "import"
	SyncBackup = "backup"

	SyncPending   = "pending"
	SyncCompleted = "completed"
	SyncFailed    = "failed"
)

// DriveSync records one spreadsheet handed to external storage, either a
// connected sheet or the scheduled local backup snapshot.
type DriveSync struct {
	ID           uint64    `json:"id"`
	FileName     string    `json:"fileName"`
	DriveFileID  string    `json:"driveFileId"`
	LastSyncTime time.Time `json:"lastSyncTime"`
	SyncType     string    `json:"syncType"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
