package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.EmailCampaignRepository = (*EmailCampaignRepo)(nil)

// EmailCampaignRepo implementación de EmailCampaignRepository.
type EmailCampaignRepo struct {
	q Querier
}

func NewEmailCampaignRepository(q Querier) *EmailCampaignRepo {
	return &EmailCampaignRepo{q: track(q, "email_campaigns")}
}

type emailCampaignRow struct {
	ID            string     `db:"id"`
	Subject       string     `db:"subject"`
	Content       string     `db:"content"`
	RecipientType string     `db:"recipient_type"`
	SentDate      *time.Time `db:"sent_date"`
	Status        string     `db:"status"`
	SentCount     int        `db:"sent_count"`
	CreatedAt     time.Time  `db:"created_at"`
}

// List devuelve las campañas por fecha de envío descendente; los borradores al final.
func (r *EmailCampaignRepo) List(ctx context.Context) ([]*entity.EmailCampaign, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, subject, content, recipient_type, sent_date, status, sent_count, created_at
		FROM email_campaigns ORDER BY sent_date DESC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, wrapErr("email_campaigns.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[emailCampaignRow])
	if err != nil {
		return nil, wrapErr("email_campaigns.list", err)
	}
	out := make([]*entity.EmailCampaign, 0, len(list))
	for _, row := range list {
		out = append(out, &entity.EmailCampaign{
			ID:            row.ID,
			Subject:       row.Subject,
			Content:       row.Content,
			RecipientType: entity.RecipientType(row.RecipientType),
			SentDate:      row.SentDate,
			Status:        entity.CampaignStatus(row.Status),
			SentCount:     row.SentCount,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}

func (r *EmailCampaignRepo) Create(ctx context.Context, c *entity.EmailCampaign) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO email_campaigns (subject, content, recipient_type, sent_date, status, sent_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		c.Subject, c.Content, string(c.RecipientType), c.SentDate, string(c.Status), c.SentCount,
	).Scan(&c.ID, &c.CreatedAt)
	return wrapErr("email_campaigns.create", err)
}
