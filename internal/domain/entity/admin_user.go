package entity

import "time"

// AdminRole función del usuario del back-office.
type AdminRole string

const (
	AdminRoleAdmin   AdminRole = "Admin"
	AdminRoleSupport AdminRole = "Suporte"
	AdminRoleFinance AdminRole = "Financeiro"
)

func (r AdminRole) IsValid() bool {
	return r == AdminRoleAdmin || r == AdminRoleSupport || r == AdminRoleFinance
}

// AdminUser usuario del back-office. Existe exactamente un perfil de administrador
// actual (tabla admin_profile); los demás son staff (tabla admin_users).
type AdminUser struct {
	ID         string
	Name       string
	Email      string // siempre en minúsculas
	Password   string
	Role       AdminRole
	AvatarURL  string
	LastActive time.Time
	CreatedAt  time.Time
}
