package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var (
	_ repository.BenefitRepository        = (*BenefitRepo)(nil)
	_ repository.FAQRepository            = (*FAQRepo)(nil)
	_ repository.MarketingAssetRepository = (*MarketingAssetRepo)(nil)
)

// deleteByID borra una fila por ID; ErrNotFound si no existía.
func deleteByID(ctx context.Context, q Querier, op, table, id string) error {
	tag, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return wrapErr(op, err)
	}
	return affected(tag)
}

// ────────────────────────────────────────────────────────────────────────────
// Benefits
// ────────────────────────────────────────────────────────────────────────────

// BenefitRepo implementación de BenefitRepository.
type BenefitRepo struct {
	q Querier
}

func NewBenefitRepository(q Querier) *BenefitRepo {
	return &BenefitRepo{q: track(q, "benefits")}
}

type benefitRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Discount    string    `db:"discount"`
	Code        string    `db:"code"`
	Category    string    `db:"category"`
	Image       *string   `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r benefitRow) toEntity() *entity.Benefit {
	return &entity.Benefit{
		ID:          r.ID,
		Name:        r.Name,
		Description: deref(r.Description),
		Discount:    r.Discount,
		Code:        r.Code,
		Category:    entity.BenefitCategory(r.Category),
		Image:       deref(r.Image),
		CreatedAt:   r.CreatedAt,
	}
}

func (r *BenefitRepo) List(ctx context.Context) ([]*entity.Benefit, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, discount, code, category, image, created_at
		FROM benefits ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("benefits.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[benefitRow])
	if err != nil {
		return nil, wrapErr("benefits.list", err)
	}
	out := make([]*entity.Benefit, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *BenefitRepo) Create(ctx context.Context, b *entity.Benefit) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO benefits (name, description, discount, code, category, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		b.Name, nullIfEmpty(b.Description), b.Discount, b.Code, string(b.Category), nullIfEmpty(b.Image),
	).Scan(&b.ID, &b.CreatedAt)
	return wrapErr("benefits.create", err)
}

func (r *BenefitRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "benefits.delete", "benefits", id)
}

// ────────────────────────────────────────────────────────────────────────────
// FAQ
// ────────────────────────────────────────────────────────────────────────────

// FAQRepo implementación de FAQRepository.
type FAQRepo struct {
	q Querier
}

func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: track(q, "faq_items")}
}

type faqRow struct {
	ID        string    `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *FAQRepo) List(ctx context.Context) ([]*entity.FAQItem, error) {
	rows, err := r.q.Query(ctx, `SELECT id, question, answer, category, created_at FROM faq_items ORDER BY created_at`)
	if err != nil {
		return nil, wrapErr("faq.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[faqRow])
	if err != nil {
		return nil, wrapErr("faq.list", err)
	}
	out := make([]*entity.FAQItem, 0, len(list))
	for _, row := range list {
		out = append(out, &entity.FAQItem{
			ID:        row.ID,
			Question:  row.Question,
			Answer:    row.Answer,
			Category:  entity.FAQCategory(row.Category),
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *FAQRepo) Create(ctx context.Context, f *entity.FAQItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO faq_items (question, answer, category) VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		f.Question, f.Answer, string(f.Category),
	).Scan(&f.ID, &f.CreatedAt)
	return wrapErr("faq.create", err)
}

func (r *FAQRepo) Update(ctx context.Context, id string, p repository.FAQPatch) error {
	var category *string
	if p.Category != nil {
		c := string(*p.Category)
		category = &c
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE faq_items SET
			question = COALESCE($2, question),
			answer   = COALESCE($3, answer),
			category = COALESCE($4, category)
		WHERE id = $1`, id, p.Question, p.Answer, category)
	if err != nil {
		return wrapErr("faq.update", err)
	}
	return affected(tag)
}

func (r *FAQRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "faq.delete", "faq_items", id)
}

// ────────────────────────────────────────────────────────────────────────────
// Marketing
// ────────────────────────────────────────────────────────────────────────────

// MarketingAssetRepo implementación de MarketingAssetRepository.
type MarketingAssetRepo struct {
	q Querier
}

func NewMarketingAssetRepository(q Querier) *MarketingAssetRepo {
	return &MarketingAssetRepo{q: track(q, "marketing_assets")}
}

type marketingRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Type        string    `db:"type"`
	URL         *string   `db:"url"`
	Content     *string   `db:"content"`
	Thumbnail   *string   `db:"thumbnail"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *MarketingAssetRepo) List(ctx context.Context) ([]*entity.MarketingAsset, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, title, description, type, url, content, thumbnail, category, created_at
		FROM marketing_assets ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("marketing.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[marketingRow])
	if err != nil {
		return nil, wrapErr("marketing.list", err)
	}
	out := make([]*entity.MarketingAsset, 0, len(list))
	for _, row := range list {
		out = append(out, &entity.MarketingAsset{
			ID:          row.ID,
			Title:       row.Title,
			Description: deref(row.Description),
			Type:        entity.MarketingType(row.Type),
			URL:         deref(row.URL),
			Content:     deref(row.Content),
			Thumbnail:   deref(row.Thumbnail),
			Category:    entity.MarketingCategory(row.Category),
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func (r *MarketingAssetRepo) Create(ctx context.Context, a *entity.MarketingAsset) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO marketing_assets (title, description, type, url, content, thumbnail, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		a.Title, nullIfEmpty(a.Description), string(a.Type), nullIfEmpty(a.URL), nullIfEmpty(a.Content),
		nullIfEmpty(a.Thumbnail), string(a.Category),
	).Scan(&a.ID, &a.CreatedAt)
	return wrapErr("marketing.create", err)
}

func (r *MarketingAssetRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "marketing.delete", "marketing_assets", id)
}
