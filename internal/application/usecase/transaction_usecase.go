package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

// CommissionPayoutDelay plazo entre la venta y el pago previsto de la comisión.
const CommissionPayoutDelay = 30 * 24 * time.Hour

// TransactionUseCase ventas atribuidas a afiliados y sus comisiones.
type TransactionUseCase struct {
	repo     repository.TransactionRepository
	partners repository.PartnerRepository
	now      func() time.Time
}

func NewTransactionUseCase(repo repository.TransactionRepository, partners repository.PartnerRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, partners: partners, now: time.Now}
}

// GetAll lista todas las transacciones, la más reciente primero.
func (uc *TransactionUseCase) GetAll(ctx context.Context) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTransactionResponse), nil
}

// GetByPartner lista las transacciones de un afiliado.
func (uc *TransactionUseCase) GetByPartner(ctx context.Context, partnerID string) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toTransactionResponse), nil
}

// Update cambia estado, archivado y/o fecha prevista de pago.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) error {
	patch := repository.TransactionPatch{Archived: in.Archived, ScheduledDate: in.ScheduledDate}
	if in.Status != nil {
		s := entity.TransactionStatus(*in.Status)
		if !s.IsValid() {
			return invalidEnum("status")
		}
		patch.Status = &s
	}
	return uc.repo.Update(ctx, id, patch)
}

// RecordSale atribuye una venta al afiliado dueño del cupón, calcula su comisión y suma la venta a
// sus totales. Los dos pasos son escrituras independientes.
func (uc *TransactionUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.TransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	partner, err := uc.partners.GetByCouponCode(ctx, in.CouponCode)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("couponCode", "cupón inexistente")
	}
	if err != nil {
		return nil, err
	}
	if partner.Status != entity.PartnerActive {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	scheduled := now.Add(CommissionPayoutDelay)
	t := &entity.Transaction{
		PartnerID:       partner.ID,
		CustomerName:    in.CustomerName,
		ProductName:     in.ProductName,
		SaleValue:       in.SaleValue,
		CommissionValue: partner.Commission(in.SaleValue),
		Status:          entity.TransactionScheduled,
		Date:            now,
		ScheduledDate:   &scheduled,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	if err := uc.partners.AddSale(ctx, partner.ID, t.CommissionValue); err != nil {
		return nil, err
	}
	out := toTransactionResponse(t)
	return &out, nil
}
