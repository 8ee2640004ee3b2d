package repository

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// EmailCampaignRepository define el puerto de persistencia para EmailCampaign.
type EmailCampaignRepository interface {
	List(ctx context.Context) ([]*entity.EmailCampaign, error)
	Create(ctx context.Context, campaign *entity.EmailCampaign) error
}
