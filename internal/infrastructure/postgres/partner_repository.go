package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository.
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: track(q, "partners")}
}

const partnerColumns = `id, name, email, phone, password, instagram, category, status, avatar_url, coupon_code,
	commission_type, commission_value, pix_key, pix_type, total_sales, total_earned, created_at`

type partnerRow struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Email           string          `db:"email"`
	Phone           string          `db:"phone"`
	Password        string          `db:"password"`
	Instagram       *string         `db:"instagram"`
	Category        string          `db:"category"`
	Status          string          `db:"status"`
	AvatarURL       *string         `db:"avatar_url"`
	CouponCode      string          `db:"coupon_code"`
	CommissionType  string          `db:"commission_type"`
	CommissionValue decimal.Decimal `db:"commission_value"`
	PixKey          string          `db:"pix_key"`
	PixType         string          `db:"pix_type"`
	TotalSales      int             `db:"total_sales"`
	TotalEarned     decimal.Decimal `db:"total_earned"`
	CreatedAt       time.Time       `db:"created_at"`
}

func (r partnerRow) toEntity() *entity.Partner {
	return &entity.Partner{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		Instagram:       deref(r.Instagram),
		Category:        entity.PartnerCategory(r.Category),
		Status:          entity.PartnerStatus(r.Status),
		AvatarURL:       deref(r.AvatarURL),
		CouponCode:      r.CouponCode,
		CommissionType:  entity.CommissionType(r.CommissionType),
		CommissionValue: r.CommissionValue,
		PixKey:          r.PixKey,
		PixType:         entity.PixType(r.PixType),
		TotalSales:      r.TotalSales,
		TotalEarned:     r.TotalEarned,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *PartnerRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Partner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partnerColumns+` FROM partners WHERE `+where, arg)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[partnerRow])
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return row.toEntity(), nil
}

// List devuelve todos los afiliados, los más recientes primero.
func (r *PartnerRepo) List(ctx context.Context) ([]*entity.Partner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("partners.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[partnerRow])
	if err != nil {
		return nil, wrapErr("partners.list", err)
	}
	out := make([]*entity.Partner, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *PartnerRepo) GetByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	return r.getOne(ctx, "partners.get_by_email", `email = lower($1)`, email)
}

func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	return r.getOne(ctx, "partners.get_by_id", `id = $1`, id)
}

// GetByCouponCode busca por cupón sin distinguir mayúsculas.
func (r *PartnerRepo) GetByCouponCode(ctx context.Context, code string) (*entity.Partner, error) {
	return r.getOne(ctx, "partners.get_by_coupon", `coupon_code = upper($1)`, code)
}

// Create persiste un afiliado; email y cupón duplicados devuelven domain.ErrDuplicate.
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO partners (name, email, phone, password, instagram, category, status, avatar_url, coupon_code,
		                      commission_type, commission_value, pix_key, pix_type, total_sales, total_earned)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, upper($9), $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Email, p.Phone, p.Password, nullIfEmpty(p.Instagram), string(p.Category), string(p.Status),
		nullIfEmpty(p.AvatarURL), p.CouponCode, string(p.CommissionType), p.CommissionValue, p.PixKey,
		string(p.PixType), p.TotalSales, p.TotalEarned,
	).Scan(&p.ID, &p.CreatedAt)
	return wrapErr("partners.create", err)
}

// Update actualiza estado y totales.
func (r *PartnerRepo) Update(ctx context.Context, id string, p repository.PartnerPatch) error {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE partners SET
			status       = COALESCE($2, status),
			total_sales  = COALESCE($3, total_sales),
			total_earned = COALESCE($4, total_earned)
		WHERE id = $1`, id, status, p.TotalSales, p.TotalEarned)
	if err != nil {
		return wrapErr("partners.update", err)
	}
	return affected(tag)
}

// AddSale suma una venta y su comisión sin leer antes los totales.
func (r *PartnerRepo) AddSale(ctx context.Context, id string, commission decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE partners SET total_sales = total_sales + 1, total_earned = total_earned + $2
		WHERE id = $1`, id, commission)
	if err != nil {
		return wrapErr("partners.add_sale", err)
	}
	return affected(tag)
}

func (r *PartnerRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE partners SET password = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return wrapErr("partners.update_password", err)
	}
	return affected(tag)
}

func (r *PartnerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return wrapErr("partners.delete", err)
	}
	return affected(tag)
}

// Emails lista los emails de afiliados activos.
func (r *PartnerRepo) Emails(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT email FROM partners WHERE status = 'Ativo' ORDER BY created_at`)
	if err != nil {
		return nil, wrapErr("partners.emails", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapErr("partners.emails", err)
	}
	return emails, nil
}
