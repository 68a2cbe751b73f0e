package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Roles known to the system.
const (
	RoleTechnician = "technician"
	RoleNurse      = "nurse"
	RoleAdmin      = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleTechnician, RoleNurse, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID         uint64      `json:"id"`
	Name       string      `json:"name"`
	Email      null.String `json:"email"`
	Phone      null.String `json:"phone"`
	Password   string      `json:"-"`
	Role       string      `json:"role"`
	Department string      `json:"department"`
	IsActive   bool        `json:"isActive"`
	CreatedAt  time.Time   `json:"createdAt"`
}
