package entities

import "time"

// Equipment workflow statuses. Any status may be set from any status:
// manual overrides are a deliberate part of the workflow, only membership
// is enforced.
const (
	EquipmentOperational  = "operational"
	EquipmentMaintenance  = "maintenance"
	EquipmentOutOfService = "out_of_service"
)

func IsValidEquipmentStatus(status string) bool {
	switch status {
	case EquipmentOperational, EquipmentMaintenance, EquipmentOutOfService:
		return true
	}
	return false
}

type Equipment struct {
	ID                  uint64                 `json:"id"`
	Name                string                 `json:"name"`
	Model               string                 `json:"model"`
	Manufacturer        string                 `json:"manufacturer"`
	SerialNumber        string                 `json:"serialNumber"`
	Barcode             string                 `json:"barcode"`
	Department          string                 `json:"department"`
	Location            string                 `json:"location"`
	Status              string                 `json:"status"`
	LastMaintenanceDate *time.Time             `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time             `json:"nextMaintenanceDate"`
	PurchaseDate        *time.Time             `json:"purchaseDate"`
	WarrantyExpiry      *time.Time             `json:"warrantyExpiry"`
	Specifications      map[string]interface{} `json:"specifications"`
	CreatedAt           time.Time              `json:"createdAt"`
}
