package repository

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// BenefitRepository define el puerto de persistencia para Benefit.
type BenefitRepository interface {
	List(ctx context.Context) ([]*entity.Benefit, error)
	Create(ctx context.Context, benefit *entity.Benefit) error
	Delete(ctx context.Context, id string) error
}

// FAQPatch campos actualizables de una pregunta frecuente.
type FAQPatch struct {
	Question *string
	Answer   *string
	Category *entity.FAQCategory
}

// FAQRepository define el puerto de persistencia para FAQItem.
type FAQRepository interface {
	List(ctx context.Context) ([]*entity.FAQItem, error)
	Create(ctx context.Context, item *entity.FAQItem) error
	Update(ctx context.Context, id string, patch FAQPatch) error
	Delete(ctx context.Context, id string) error
}

// MarketingAssetRepository define el puerto de persistencia para MarketingAsset.
type MarketingAssetRepository interface {
	List(ctx context.Context) ([]*entity.MarketingAsset, error)
	Create(ctx context.Context, asset *entity.MarketingAsset) error
	Delete(ctx context.Context, id string) error
}
