package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un paquete de accesos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Type        string          `json:"type" validate:"required"`
	AccessCount int             `json:"accessCount" validate:"required,oneof=1 2 4"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Features    []string        `json:"features" validate:"omitempty,dive,required"`
	IsActive    *bool           `json:"isActive"`
}

// UpdateProductRequest precio y disponibilidad.
type UpdateProductRequest struct {
	Price    *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	IsActive *bool            `json:"isActive"`
}

// ProductResponse salida de un paquete.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	AccessCount    int             `json:"accessCount"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"priceFormatted"`
	Features       []string        `json:"features"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}
