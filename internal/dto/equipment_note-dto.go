package dto

import "medequip-system/internal/entities"

type CreateEquipmentNoteDTO struct {
	CreatedBy uint64 `json:"createdBy" validate:"required"`
	Note      string `json:"note" validate:"required"`
	Type      string `json:"type" validate:"required,note_type"`
	Priority  string `json:"priority" validate:"required,note_priority"`
}

type EquipmentNoteDTO struct {
	entities.EquipmentNote
	CreatedByUser *entities.User `json:"createdByUser"`
}
