package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto asignados al crear un cliente.
const (
	NoPurchaseDate          = "-"
	PendingMembershipID     = "PENDENTE"
	DefaultCustomerLocation = "Brasil"
)

// Customer representa un miembro (viajero) del programa. Es dueño de sus vouchers.
type Customer struct {
	ID                   string
	Name                 string
	Email                string // siempre en minúsculas
	Phone                string
	Password             string // hash bcrypt después de persistir
	AvatarURL            string
	TotalSpend           decimal.Decimal
	Location             string
	LastPurchaseDate     string // fecha ISO o "-" si nunca compró
	ExternalMembershipID string // ID en la red de salas VIP o "PENDENTE"
	Vouchers             []Voucher
	CreatedAt            time.Time
}

// HasVoucher indica si el cliente ya posee un voucher con ese ID.
func (c *Customer) HasVoucher(id string) bool {
	for _, v := range c.Vouchers {
		if v.ID == id {
			return true
		}
	}
	return false
}
