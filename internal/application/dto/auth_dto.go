package dto

import "time"

// SignUpRequest alta de cliente con credenciales.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=30"`
	Password string `json:"password" validate:"required,min=6"`
	CPF      string `json:"cpf" validate:"omitempty,cpf"`
}

// SignInRequest credenciales.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser datos mínimos del usuario autenticado.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse resultado de sign-up/sign-in.
// Role es el rol verificado por el servidor; UIRole es solo la sugerencia de enrutamiento
// derivada del email.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Role      string      `json:"role"`
	UIRole    string      `json:"uiRole"`
	User      SessionUser `json:"user"`
}

// SessionInfo sesión actual a partir del token.
type SessionInfo struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
