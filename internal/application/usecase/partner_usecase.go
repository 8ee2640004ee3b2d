package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/pkg/format"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// Comisión de un afiliado que se registra sin indicarla.
var (
	DefaultCommissionType  = entity.CommissionPercentage
	DefaultCommissionValue = decimal.NewFromInt(10)
)

const couponAttempts = 5

// PartnerUseCase casos de uso de afiliados (motoristas, influencers, agencias).
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

func (uc *PartnerUseCase) GetAll(ctx context.Context) ([]dto.PartnerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toPartnerResponse), nil
}

// GetByEmail devuelve domain.ErrNotFound si no hay afiliado con ese email.
func (uc *PartnerUseCase) GetByEmail(ctx context.Context, email string) (*dto.PartnerResponse, error) {
	p, err := uc.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

func (uc *PartnerUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

// Create registra un afiliado. Queda Pendente con totales en cero hasta que el back-office lo apruebe.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := &entity.Partner{
		Name:            in.Name,
		Email:           NormalizeEmail(in.Email),
		Phone:           in.Phone,
		Instagram:       in.Instagram,
		Category:        entity.PartnerCategory(in.Category),
		Status:          entity.PartnerPending,
		AvatarURL:       orDefault(in.AvatarURL, generator.AvatarURL(in.Name)),
		CouponCode:      strings.ToUpper(strings.TrimSpace(in.CouponCode)),
		CommissionType:  entity.CommissionType(orDefault(in.CommissionType, string(DefaultCommissionType))),
		CommissionValue: DefaultCommissionValue,
		PixKey:          strings.TrimSpace(in.PixKey),
		PixType:         entity.PixType(in.PixType),
		TotalSales:      0,
		TotalEarned:     decimal.Zero,
	}
	if in.CommissionValue != nil {
		p.CommissionValue = *in.CommissionValue
	}
	if err := validatePartner(p); err != nil {
		return nil, err
	}
	if in.Password != "" {
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		p.Password = hash
	}

	var err error
	if p.CouponCode != "" {
		err = uc.repo.Create(ctx, p)
	} else {
		err = uc.createWithGeneratedCoupon(ctx, p)
	}
	if domain.DuplicateField(err) == "couponCode" {
		return nil, domain.ErrCouponTaken
	}
	if err != nil {
		return nil, err
	}
	out := toPartnerResponse(p)
	return &out, nil
}

// createWithGeneratedCoupon reintenta con otro cupón si el generado ya estaba en uso.
func (uc *PartnerUseCase) createWithGeneratedCoupon(ctx context.Context, p *entity.Partner) error {
	for i := 0; i < couponAttempts; i++ {
		p.CouponCode = generator.CouponCode(p.Name)
		_, err := uc.repo.GetByCouponCode(ctx, p.CouponCode)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return uc.repo.Create(ctx, p)
	}
	return domain.ErrConflict
}

func validatePartner(p *entity.Partner) error {
	switch {
	case !p.Category.IsValid():
		return invalidEnum("category")
	case !p.CommissionType.IsValid():
		return invalidEnum("commissionType")
	case !p.PixType.IsValid():
		return invalidEnum("pixType")
	case p.CommissionType == entity.CommissionPercentage && p.CommissionValue.GreaterThan(decimal.NewFromInt(100)):
		return domain.NewValidationError("commissionValue", "un porcentaje no puede superar 100")
	case p.PixType == entity.PixCPF && !format.ValidCPF(p.PixKey):
		return domain.NewValidationError("pixKey", "CPF inválido")
	case p.PixType == entity.PixEmail && !strings.Contains(p.PixKey, "@"):
		return domain.NewValidationError("pixKey", "email inválido")
	}
	return nil
}

// Update cambia estado y/o totales.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	patch := repository.PartnerPatch{TotalSales: in.TotalSales, TotalEarned: in.TotalEarned}
	if in.Status != nil {
		s := entity.PartnerStatus(*in.Status)
		if !s.IsValid() {
			return invalidEnum("status")
		}
		patch.Status = &s
	}
	return uc.repo.Update(ctx, id, patch)
}

func (uc *PartnerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
