package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"medequip-system/internal/entities"
)

// RegisterCustomValidations wires the closed-enumeration rules used by
// the DTO validation tags.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"equipment_status":   enum(entities.IsValidEquipmentStatus),
		"fault_status":       enum(entities.IsValidFaultStatus),
		"priority":           enum(entities.IsValidPriority),
		"maintenance_type":   enum(entities.IsValidMaintenanceType),
		"maintenance_status": enum(entities.IsValidMaintenanceStatus),
		"check_status":       enum(entities.IsValidCheckStatus),
		"note_type":          enum(entities.IsValidNoteType),
		"note_priority":      enum(entities.IsValidNotePriority),
		"user_role":          enum(entities.IsValidRole),
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func enum(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			// emptiness is the concern of the required tag
			return true
		}
		return valid(s)
	}
}
