package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionScheduled TransactionStatus = "Agendado"
	TransactionPaid      TransactionStatus = "Pago"
	TransactionCancelled TransactionStatus = "Cancelado"
)

func (s TransactionStatus) IsValid() bool {
	return s == TransactionScheduled || s == TransactionPaid || s == TransactionCancelled
}

// Transaction venta atribuida a un afiliado. Archived es el único borrado lógico del sistema.
type Transaction struct {
	ID              string
	PartnerID       string
	CustomerName    string
	ProductName     string
	SaleValue       decimal.Decimal
	CommissionValue decimal.Decimal
	Status          TransactionStatus
	Date            time.Time
	ScheduledDate   *time.Time // fecha prevista de pago de la comisión
	Archived        bool
	CreatedAt       time.Time
}
