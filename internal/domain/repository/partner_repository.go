package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// PartnerPatch campos actualizables de un afiliado.
type PartnerPatch struct {
	Status      *entity.PartnerStatus
	TotalSales  *int
	TotalEarned *decimal.Decimal
}

// PartnerRepository define el puerto de persistencia para Partner.
type PartnerRepository interface {
	List(ctx context.Context) ([]*entity.Partner, error)
	GetByEmail(ctx context.Context, email string) (*entity.Partner, error)
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	GetByCouponCode(ctx context.Context, code string) (*entity.Partner, error)
	Create(ctx context.Context, partner *entity.Partner) error
	Update(ctx context.Context, id string, patch PartnerPatch) error
	// AddSale incrementa total_sales en 1 y total_earned en commission en una sola sentencia.
	AddSale(ctx context.Context, id string, commission decimal.Decimal) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	Emails(ctx context.Context) ([]string, error)
}
