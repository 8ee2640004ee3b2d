package usecase

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

// ────────────────────────────────────────────────────────────────────────────
// Beneficios
// ────────────────────────────────────────────────────────────────────────────

// BenefitUseCase beneficios para socios (transporte, compras, hospedaje).
type BenefitUseCase struct {
	repo repository.BenefitRepository
}

func NewBenefitUseCase(repo repository.BenefitRepository) *BenefitUseCase {
	return &BenefitUseCase{repo: repo}
}

func (uc *BenefitUseCase) GetAll(ctx context.Context) ([]dto.BenefitResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toBenefitResponse), nil
}

func (uc *BenefitUseCase) Create(ctx context.Context, in dto.CreateBenefitRequest) (*dto.BenefitResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	b := &entity.Benefit{
		Name:        in.Name,
		Description: in.Description,
		Discount:    in.Discount,
		Code:        in.Code,
		Category:    entity.BenefitCategory(in.Category),
		Image:       in.Image,
	}
	if !b.Category.IsValid() {
		return nil, invalidEnum("category")
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	out := toBenefitResponse(b)
	return &out, nil
}

func (uc *BenefitUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ────────────────────────────────────────────────────────────────────────────
// FAQ
// ────────────────────────────────────────────────────────────────────────────

// FAQUseCase preguntas frecuentes del centro de ayuda.
type FAQUseCase struct {
	repo repository.FAQRepository
}

func NewFAQUseCase(repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

func (uc *FAQUseCase) GetAll(ctx context.Context) ([]dto.FAQResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toFAQResponse), nil
}

// Create crea una pregunta; sin categoría queda en Geral.
func (uc *FAQUseCase) Create(ctx context.Context, in dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	f := &entity.FAQItem{
		Question: in.Question,
		Answer:   in.Answer,
		Category: entity.FAQCategory(orDefault(in.Category, string(entity.FAQGeneral))),
	}
	if !f.Category.IsValid() {
		return nil, invalidEnum("category")
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	out := toFAQResponse(f)
	return &out, nil
}

func (uc *FAQUseCase) Update(ctx context.Context, id string, in dto.UpdateFAQRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	patch := repository.FAQPatch{Question: in.Question, Answer: in.Answer}
	if in.Category != nil {
		c := entity.FAQCategory(*in.Category)
		if !c.IsValid() {
			return invalidEnum("category")
		}
		patch.Category = &c
	}
	return uc.repo.Update(ctx, id, patch)
}

func (uc *FAQUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ────────────────────────────────────────────────────────────────────────────
// Marketing
// ────────────────────────────────────────────────────────────────────────────

// MarketingUseCase material de divulgación para afiliados.
type MarketingUseCase struct {
	repo repository.MarketingAssetRepository
}

func NewMarketingUseCase(repo repository.MarketingAssetRepository) *MarketingUseCase {
	return &MarketingUseCase{repo: repo}
}

func (uc *MarketingUseCase) GetAll(ctx context.Context) ([]dto.MarketingAssetResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toMarketingAssetResponse), nil
}

func (uc *MarketingUseCase) Create(ctx context.Context, in dto.CreateMarketingAssetRequest) (*dto.MarketingAssetResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	a := &entity.MarketingAsset{
		Title:       in.Title,
		Description: in.Description,
		Type:        entity.MarketingType(in.Type),
		URL:         in.URL,
		Content:     in.Content,
		Thumbnail:   in.Thumbnail,
		Category:    entity.MarketingCategory(in.Category),
	}
	switch {
	case !a.Type.IsValid():
		return nil, invalidEnum("type")
	case !a.Category.IsValid():
		return nil, invalidEnum("category")
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	out := toMarketingAssetResponse(a)
	return &out, nil
}

func (uc *MarketingUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
