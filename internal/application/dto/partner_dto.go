package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartnerRequest alta de afiliado (registro público o back-office).
// Status y totales no se aceptan: el alta siempre queda Pendente con totales en cero.
type CreatePartnerRequest struct {
	Name            string           `json:"name" validate:"required,max=200"`
	Email           string           `json:"email" validate:"required,email"`
	Phone           string           `json:"phone" validate:"required,max=30"`
	Password        string           `json:"password" validate:"omitempty,min=6"`
	Instagram       string           `json:"instagram" validate:"max=100"`
	Category        string           `json:"category" validate:"required"`
	AvatarURL       string           `json:"avatar" validate:"omitempty,url"`
	CouponCode      string           `json:"couponCode" validate:"omitempty,alphanum,max=20"`
	CommissionType  string           `json:"commissionType"`
	CommissionValue *decimal.Decimal `json:"commissionValue" validate:"omitempty,gte=0"`
	PixKey          string           `json:"pixKey" validate:"required,max=140"`
	PixType         string           `json:"pixType" validate:"required"`
}

// UpdatePartnerRequest estado y totales del afiliado.
type UpdatePartnerRequest struct {
	Status      *string          `json:"status"`
	TotalSales  *int             `json:"totalSales" validate:"omitempty,gte=0"`
	TotalEarned *decimal.Decimal `json:"totalEarned" validate:"omitempty,gte=0"`
}

// PartnerResponse salida de un afiliado.
type PartnerResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	PhoneFormatted  string          `json:"phoneFormatted,omitempty"`
	Instagram       string          `json:"instagram,omitempty"`
	Category        string          `json:"category"`
	Status          string          `json:"status"`
	AvatarURL       string          `json:"avatar"`
	CouponCode      string          `json:"couponCode"`
	CommissionType  string          `json:"commissionType"`
	CommissionValue decimal.Decimal `json:"commissionValue"`
	PixKey          string          `json:"pixKey"`
	PixKeyFormatted string          `json:"pixKeyFormatted"`
	PixType         string          `json:"pixType"`
	TotalSales      int             `json:"totalSales"`
	TotalEarned     decimal.Decimal `json:"totalEarned"`
	CreatedAt       time.Time       `json:"createdAt"`
}
