package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerStatus estado de un afiliado.
type PartnerStatus string

const (
	PartnerActive  PartnerStatus = "Ativo"
	PartnerPending PartnerStatus = "Pendente"
	PartnerBlocked PartnerStatus = "Bloqueado"
)

func (s PartnerStatus) IsValid() bool {
	return s == PartnerActive || s == PartnerPending || s == PartnerBlocked
}

// PartnerCategory tipo de afiliado.
type PartnerCategory string

const (
	PartnerDriver     PartnerCategory = "Motorista"
	PartnerInfluencer PartnerCategory = "Influencer"
	PartnerAgency     PartnerCategory = "Agência"
)

func (c PartnerCategory) IsValid() bool {
	return c == PartnerDriver || c == PartnerInfluencer || c == PartnerAgency
}

// CommissionType forma de cálculo de la comisión.
type CommissionType string

const (
	CommissionFixed      CommissionType = "Fixed"
	CommissionPercentage CommissionType = "Percentage"
)

func (t CommissionType) IsValid() bool {
	return t == CommissionFixed || t == CommissionPercentage
}

// PixType tipo de clave PIX para pagos de comisión.
type PixType string

const (
	PixCPF    PixType = "CPF"
	PixEmail  PixType = "Email"
	PixPhone  PixType = "Telefone"
	PixRandom PixType = "Aleatoria"
)

func (t PixType) IsValid() bool {
	switch t {
	case PixCPF, PixEmail, PixPhone, PixRandom:
		return true
	}
	return false
}

// Partner afiliado (motorista, influencer o agencia) que gana comisión vía cupón único.
type Partner struct {
	ID              string
	Name            string
	Email           string // siempre en minúsculas
	Phone           string
	Password        string
	Instagram       string
	Category        PartnerCategory
	Status          PartnerStatus
	AvatarURL       string
	CouponCode      string // único entre afiliados
	CommissionType  CommissionType
	CommissionValue decimal.Decimal
	PixKey          string
	PixType         PixType
	TotalSales      int
	TotalEarned     decimal.Decimal
	CreatedAt       time.Time
}

// Commission calcula la comisión sobre una venta según el tipo configurado.
// Percentage: saleValue * CommissionValue / 100. Fixed: CommissionValue.
func (p *Partner) Commission(saleValue decimal.Decimal) decimal.Decimal {
	if p.CommissionType == CommissionPercentage {
		return saleValue.Mul(p.CommissionValue).Div(decimal.NewFromInt(100)).Round(2)
	}
	return p.CommissionValue
}
