package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherRequest voucher tal como lo envía el cliente (alta o lista de vouchers de un cliente).
type VoucherRequest struct {
	ID              string `json:"id"`
	PackName        string `json:"packName" validate:"required,max=200"`
	Code            string `json:"code" validate:"max=64"`
	RemainingAccess int    `json:"remainingAccess" validate:"gte=0"`
	TotalAccess     int    `json:"totalAccess" validate:"min=1"`
	Status          string `json:"status"`
	PurchaseDate    string `json:"purchaseDate"`
	QRCodeURL       string `json:"qrCodeUrl"`
}

// VoucherResponse salida de un voucher.
type VoucherResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	PackName        string    `json:"packName"`
	Code            string    `json:"code"`
	RemainingAccess int       `json:"remainingAccess"`
	TotalAccess     int       `json:"totalAccess"`
	Status          string    `json:"status"`
	PurchaseDate    string    `json:"purchaseDate"`
	QRCodeURL       string    `json:"qrCodeUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// UpdateVoucherRequest cambia accesos restantes y/o estado.
type UpdateVoucherRequest struct {
	RemainingAccess *int    `json:"remainingAccess" validate:"omitempty,gte=0"`
	Status          *string `json:"status"`
}

// CreateCustomerRequest entrada para crear un cliente. TotalSpend, LastPurchaseDate,
// ExternalMembershipID y ActiveVouchers se aceptan en el cuerpo pero se ignoran: el alta siempre
// parte de los valores por defecto.
type CreateCustomerRequest struct {
	Name                 string           `json:"name" validate:"required,max=200"`
	Email                string           `json:"email" validate:"required,email"`
	Phone                string           `json:"phone" validate:"max=30"`
	Password             string           `json:"password" validate:"required,min=6"`
	AvatarURL            string           `json:"avatar" validate:"omitempty,url"`
	Location             string           `json:"location" validate:"max=120"`
	CPF                  string           `json:"cpf" validate:"omitempty,cpf"`
	TotalSpend           *decimal.Decimal `json:"totalSpend"`
	LastPurchaseDate     string           `json:"lastPurchaseDate"`
	ExternalMembershipID string           `json:"externalMembershipId"`
	ActiveVouchers       []VoucherRequest `json:"activeVouchers"`
}

// UpdateCustomerRequest actualización parcial: solo los campos presentes se modifican.
// ActiveVouchers presente = lista completa de vouchers del cliente; solo se insertan los nuevos.
type UpdateCustomerRequest struct {
	Name                 *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email                *string          `json:"email" validate:"omitempty,email"`
	Phone                *string          `json:"phone" validate:"omitempty,max=30"`
	AvatarURL            *string          `json:"avatar"`
	TotalSpend           *decimal.Decimal `json:"totalSpend" validate:"omitempty,gte=0"`
	Location             *string          `json:"location" validate:"omitempty,max=120"`
	LastPurchaseDate     *string          `json:"lastPurchaseDate"`
	ExternalMembershipID *string          `json:"externalMembershipId"`
	ActiveVouchers       []VoucherRequest `json:"activeVouchers" validate:"omitempty,dive"`
}

// CustomerResponse salida de un cliente con sus vouchers. La contraseña nunca sale.
type CustomerResponse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	PhoneFormatted       string            `json:"phoneFormatted,omitempty"`
	AvatarURL            string            `json:"avatar"`
	TotalSpend           decimal.Decimal   `json:"totalSpend"`
	Location             string            `json:"location"`
	LastPurchaseDate     string            `json:"lastPurchaseDate"`
	ExternalMembershipID string            `json:"externalMembershipId"`
	ActiveVouchers       []VoucherResponse `json:"activeVouchers"`
	CreatedAt            time.Time         `json:"createdAt"`
}

// CustomerUpdateResult informa qué vouchers fueron insertados por la actualización.
type CustomerUpdateResult struct {
	InsertedVoucherIDs []string `json:"insertedVoucherIds"`
}
