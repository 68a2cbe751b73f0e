package dto

import "time"

type CreateEquipmentDTO struct {
	Name                string                 `json:"name" validate:"required"`
	Model               string                 `json:"model" validate:"required"`
	Manufacturer        string                 `json:"manufacturer" validate:"required"`
	SerialNumber        string                 `json:"serialNumber" validate:"required"`
	Barcode             string                 `json:"barcode" validate:"required"`
	Department          string                 `json:"department" validate:"required"`
	Location            string                 `json:"location" validate:"required"`
	Status              string                 `json:"status" validate:"required,equipment_status"`
	LastMaintenanceDate *time.Time             `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time             `json:"nextMaintenanceDate"`
	PurchaseDate        *time.Time             `json:"purchaseDate"`
	WarrantyExpiry      *time.Time             `json:"warrantyExpiry"`
	Specifications      map[string]interface{} `json:"specifications"`
}

// UpdateEquipmentDTO is a partial patch: nil fields are left untouched.
type UpdateEquipmentDTO struct {
	Name                *string                `json:"name"`
	Model               *string                `json:"model"`
	Manufacturer        *string                `json:"manufacturer"`
	SerialNumber        *string                `json:"serialNumber"`
	Barcode             *string                `json:"barcode"`
	Department          *string                `json:"department"`
	Location            *string                `json:"location"`
	Status              *string                `json:"status" validate:"omitempty,equipment_status"`
	LastMaintenanceDate *time.Time             `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time             `json:"nextMaintenanceDate"`
	PurchaseDate        *time.Time             `json:"purchaseDate"`
	WarrantyExpiry      *time.Time             `json:"warrantyExpiry"`
	Specifications      map[string]interface{} `json:"specifications"`
}
