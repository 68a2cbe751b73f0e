package dto

import "medequip-system/internal/entities"

type LoginDTO struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,user_role"`
	Department string `json:"department" validate:"required"`
}

type AuthResponseDTO struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
}
