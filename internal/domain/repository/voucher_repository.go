package repository

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// VoucherPatch campos actualizables de un voucher.
type VoucherPatch struct {
	RemainingAccess *int
	Status          *entity.VoucherStatus
}

// VoucherRepository define el puerto de persistencia para Voucher.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *entity.Voucher) error
	// InsertIfAbsent inserta de forma atómica solo los vouchers cuyo ID aún no existe
	// y devuelve los IDs efectivamente insertados.
	InsertIfAbsent(ctx context.Context, customerID string, vouchers []entity.Voucher) ([]string, error)
	GetByID(ctx context.Context, id string) (*entity.Voucher, error)
	Update(ctx context.Context, id string, patch VoucherPatch) error
	// Redeem descuenta un acceso de forma atómica; domain.ErrNoAccessLeft si no quedan.
	Redeem(ctx context.Context, id string) (*entity.Voucher, error)
}
