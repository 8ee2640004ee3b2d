package usecase

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// CampaignSender entrega una campaña y devuelve cuántos emails salieron.
type CampaignSender interface {
	Send(ctx context.Context, recipients []string, subject, html string) (int, error)
}

// VoucherPDFGenerator genera el comprobante imprimible de un voucher.
type VoucherPDFGenerator interface {
	GenerateVoucherPDF(ctx context.Context, voucher *entity.Voucher, customer *entity.Customer) ([]byte, error)
}
