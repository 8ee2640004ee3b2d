package entity

import "time"

// VoucherStatus estado de un voucher (valores tal como se guardan).
type VoucherStatus string

const (
	VoucherActive     VoucherStatus = "Ativo"
	VoucherRedeemed   VoucherStatus = "Resgatado"
	VoucherExpired    VoucherStatus = "Expirado"
	VoucherProcessing VoucherStatus = "Processando"
)

// IsValid verifica que el estado pertenezca al conjunto permitido.
func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherActive, VoucherRedeemed, VoucherExpired, VoucherProcessing:
		return true
	}
	return false
}

// Voucher acceso canjeable de un cliente con presupuesto de accesos restantes/totales.
// PackName referencia VoucherPack.Name por nombre, no por FK.
type Voucher struct {
	ID              string
	CustomerID      string
	PackName        string
	Code            string
	RemainingAccess int
	TotalAccess     int
	Status          VoucherStatus
	PurchaseDate    string
	QRCodeURL       string
	CreatedAt       time.Time
}

// Validate comprueba 0 <= RemainingAccess <= TotalAccess y el estado.
func (v *Voucher) Validate() bool {
	if v.RemainingAccess < 0 || v.RemainingAccess > v.TotalAccess {
		return false
	}
	return v.Status.IsValid()
}
