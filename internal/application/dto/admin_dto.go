package dto

import "time"

// AdminUserResponse salida del perfil o de un miembro del staff.
type AdminUserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	AvatarURL  string    `json:"avatar"`
	LastActive time.Time `json:"lastActive"`
}

// UpdateAdminProfileRequest actualización parcial del perfil de administrador.
type UpdateAdminProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	AvatarURL *string `json:"avatar" validate:"omitempty,url"`
}

// AddStaffRequest alta de un miembro del back-office.
type AddStaffRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required"`
	AvatarURL string `json:"avatar" validate:"omitempty,url"`
}
