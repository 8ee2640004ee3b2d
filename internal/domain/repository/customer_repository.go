package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// CustomerPatch campos actualizables de un cliente; nil = no tocar.
type CustomerPatch struct {
	Name                 *string
	Email                *string
	Phone                *string
	AvatarURL            *string
	TotalSpend           *decimal.Decimal
	Location             *string
	LastPurchaseDate     *string
	ExternalMembershipID *string
}

// CustomerRepository define el puerto de persistencia para Customer.
// Las lecturas traen los vouchers del cliente en la misma consulta.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	// GetByEmail devuelve domain.ErrNotFound si no existe; cualquier otro error es de almacenamiento.
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// Create persiste y completa ID y CreatedAt asignados por la base.
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, id string, patch CustomerPatch) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	Emails(ctx context.Context) ([]string, error)
}
