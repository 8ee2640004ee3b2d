package repository

import (
	"context"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// AdminPatch campos actualizables del perfil o de un miembro del staff.
type AdminPatch struct {
	Name       *string
	Email      *string
	Password   *string // ya hasheado
	AvatarURL  *string
	LastActive *time.Time
}

// AdminRepository define el puerto de persistencia para el perfil de administrador (único)
// y para el staff del back-office.
type AdminRepository interface {
	// GetProfile devuelve domain.ErrNotFound si aún no hay perfil.
	GetProfile(ctx context.Context) (*entity.AdminUser, error)
	UpdateProfile(ctx context.Context, patch AdminPatch) error
	ListStaff(ctx context.Context) ([]*entity.AdminUser, error)
	GetStaffByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	AddStaff(ctx context.Context, user *entity.AdminUser) error
	UpdateStaff(ctx context.Context, id string, patch AdminPatch) error
	RemoveStaff(ctx context.Context, id string) error
}
