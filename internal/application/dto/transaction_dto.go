package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse salida de una venta atribuida a un afiliado.
type TransactionResponse struct {
	ID              string          `json:"id"`
	PartnerID       string          `json:"partnerId"`
	CustomerName    string          `json:"customerName"`
	ProductName     string          `json:"productName"`
	SaleValue       decimal.Decimal `json:"saleValue"`
	CommissionValue decimal.Decimal `json:"commissionValue"`
	Status          string          `json:"status"`
	Date            time.Time       `json:"date"`
	ScheduledDate   *time.Time      `json:"scheduledDate,omitempty"`
	Archived        bool            `json:"archived"`
}

// UpdateTransactionRequest estado, archivado y fecha prevista de pago.
type UpdateTransactionRequest struct {
	Status        *string    `json:"status"`
	Archived      *bool      `json:"archived"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// RecordSaleRequest venta hecha con el cupón de un afiliado.
type RecordSaleRequest struct {
	CouponCode   string          `json:"couponCode" validate:"required"`
	CustomerName string          `json:"customerName" validate:"required"`
	ProductName  string          `json:"productName" validate:"required"`
	SaleValue    decimal.Decimal `json:"saleValue" validate:"gte=0"`
}
