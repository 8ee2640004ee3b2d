package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// ProductPatch campos actualizables de un paquete.
type ProductPatch struct {
	Price    *decimal.Decimal
	IsActive *bool
}

// ProductRepository define el puerto de persistencia para VoucherPack.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.VoucherPack, error)
	GetByID(ctx context.Context, id string) (*entity.VoucherPack, error)
	Create(ctx context.Context, product *entity.VoucherPack) error
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}
