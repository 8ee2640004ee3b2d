package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

// VoucherUseCase operaciones directas sobre vouchers.
type VoucherUseCase struct {
	repo      repository.VoucherRepository
	customers repository.CustomerRepository
	pdf       VoucherPDFGenerator
	now       func() time.Time
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(repo repository.VoucherRepository, customers repository.CustomerRepository, pdf VoucherPDFGenerator) *VoucherUseCase {
	return &VoucherUseCase{repo: repo, customers: customers, pdf: pdf, now: time.Now}
}

// Create emite un voucher para un cliente existente. ID y código se generan si vienen vacíos.
func (uc *VoucherUseCase) Create(ctx context.Context, customerID string, in dto.VoucherRequest) (*dto.VoucherResponse, error) {
	v, err := buildVoucher(customerID, in, uc.now())
	if err != nil {
		return nil, err
	}
	if _, err := uc.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := toVoucherResponse(v)
	return &out, nil
}

// Update cambia accesos restantes y/o estado respetando 0 <= restantes <= total.
func (uc *VoucherUseCase) Update(ctx context.Context, id string, in dto.UpdateVoucherRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	patch := repository.VoucherPatch{RemainingAccess: in.RemainingAccess}
	if in.Status != nil {
		s := entity.VoucherStatus(*in.Status)
		if !s.IsValid() {
			return invalidEnum("status")
		}
		patch.Status = &s
	}
	if in.RemainingAccess != nil {
		current, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if *in.RemainingAccess > current.TotalAccess {
			return domain.NewValidationError("remainingAccess", "no puede superar totalAccess")
		}
	}
	return uc.repo.Update(ctx, id, patch)
}

// Redeem consume un acceso en la entrada a la sala. domain.ErrNoAccessLeft si ya no quedan.
func (uc *VoucherUseCase) Redeem(ctx context.Context, id string) (*dto.VoucherResponse, error) {
	v, err := uc.repo.Redeem(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toVoucherResponse(v)
	return &out, nil
}

// PDF genera el comprobante de un voucher del cliente indicado. Un voucher ajeno se trata como inexistente.
func (uc *VoucherUseCase) PDF(ctx context.Context, customerID, voucherID string) ([]byte, error) {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range c.Vouchers {
		if c.Vouchers[i].ID == voucherID {
			return uc.pdf.GenerateVoucherPDF(ctx, &c.Vouchers[i], c)
		}
	}
	return nil, domain.ErrNotFound
}
