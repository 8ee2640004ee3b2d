package entity

import "time"

// BenefitCategory categoría de beneficio de socio.
type BenefitCategory string

const (
	BenefitTransport BenefitCategory = "Transporte"
	BenefitShopping  BenefitCategory = "Shopping"
	BenefitLodging   BenefitCategory = "Hospedagem"
)

func (c BenefitCategory) IsValid() bool {
	return c == BenefitTransport || c == BenefitShopping || c == BenefitLodging
}

// Benefit descuento de un socio comercial disponible para los miembros.
type Benefit struct {
	ID          string
	Name        string
	Description string
	Discount    string // texto libre, ej. "15% OFF"
	Code        string
	Category    BenefitCategory
	Image       string
	CreatedAt   time.Time
}
