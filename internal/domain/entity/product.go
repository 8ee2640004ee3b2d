package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType alcance del paquete.
type VoucherType string

const (
	VoucherDomestic      VoucherType = "Nacional"
	VoucherInternational VoucherType = "Internacional"
)

func (t VoucherType) IsValid() bool {
	return t == VoucherDomestic || t == VoucherInternational
}

// VoucherPack producto comprable: define cantidad de accesos y precio.
type VoucherPack struct {
	ID          string
	Name        string
	Description string
	Type        VoucherType
	AccessCount int // 1, 2 o 4
	Price       decimal.Decimal
	Features    []string // orden significativo
	IsActive    bool
	CreatedAt   time.Time
}

// ValidAccessCount indica si n es una cantidad de accesos ofrecida.
func ValidAccessCount(n int) bool {
	return n == 1 || n == 2 || n == 4
}

// Validate comprueba precio >= 0, tipo y cantidad de accesos.
func (p *VoucherPack) Validate() bool {
	return !p.Price.IsNegative() && p.Type.IsValid() && ValidAccessCount(p.AccessCount)
}
