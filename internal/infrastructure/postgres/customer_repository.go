package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: track(q, "customers")}
}

// Los vouchers de cada cliente se agregan como JSON en la misma consulta.
const customerSelect = `
	SELECT c.id, c.name, c.email, c.phone, c.password, c.avatar_url, c.total_spend, c.location,
	       c.last_purchase_date, c.dragon_pass_id, c.created_at,
	       COALESCE(v.vouchers, '[]'::json) AS vouchers
	FROM customers c
	LEFT JOIN LATERAL (
		SELECT json_agg(vo ORDER BY vo.created_at) AS vouchers
		FROM vouchers vo WHERE vo.customer_id = c.id
	) v ON true`

type customerRow struct {
	ID                   string          `db:"id"`
	Name                 string          `db:"name"`
	Email                string          `db:"email"`
	Phone                *string         `db:"phone"`
	Password             string          `db:"password"`
	AvatarURL            *string         `db:"avatar_url"`
	TotalSpend           decimal.Decimal `db:"total_spend"`
	Location             string          `db:"location"`
	LastPurchaseDate     *string         `db:"last_purchase_date"`
	ExternalMembershipID string          `db:"dragon_pass_id"`
	CreatedAt            time.Time       `db:"created_at"`
	Vouchers             []voucherJSON   `db:"vouchers"`
}

// voucherJSON es la forma de cada elemento de json_agg(vouchers).
type voucherJSON struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	PackName        string    `json:"pack_name"`
	Code            string    `json:"code"`
	RemainingAccess int       `json:"remaining_access"`
	TotalAccess     int       `json:"total_access"`
	Status          string    `json:"status"`
	PurchaseDate    string    `json:"purchase_date"`
	QRCodeURL       *string   `json:"qr_code_url"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r customerRow) toEntity() *entity.Customer {
	c := &entity.Customer{
		ID:                   r.ID,
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                deref(r.Phone),
		Password:             r.Password,
		AvatarURL:            deref(r.AvatarURL),
		TotalSpend:           r.TotalSpend,
		Location:             r.Location,
		LastPurchaseDate:     deref(r.LastPurchaseDate),
		ExternalMembershipID: r.ExternalMembershipID,
		CreatedAt:            r.CreatedAt,
		Vouchers:             make([]entity.Voucher, 0, len(r.Vouchers)),
	}
	if c.LastPurchaseDate == "" {
		c.LastPurchaseDate = entity.NoPurchaseDate
	}
	for _, v := range r.Vouchers {
		c.Vouchers = append(c.Vouchers, entity.Voucher{
			ID:              v.ID,
			CustomerID:      v.CustomerID,
			PackName:        v.PackName,
			Code:            v.Code,
			RemainingAccess: v.RemainingAccess,
			TotalAccess:     v.TotalAccess,
			Status:          entity.VoucherStatus(v.Status),
			PurchaseDate:    v.PurchaseDate,
			QRCodeURL:       deref(v.QRCodeURL),
			CreatedAt:       v.CreatedAt,
		})
	}
	return c
}

func (r *CustomerRepo) collect(rows pgx.Rows) ([]*entity.Customer, error) {
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[customerRow])
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// List devuelve todos los clientes con sus vouchers, los más recientes primero.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, customerSelect+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, wrapErr("customers.list", err)
	}
	list, err := r.collect(rows)
	if err != nil {
		return nil, wrapErr("customers.list", err)
	}
	return list, nil
}

func (r *CustomerRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Customer, error) {
	rows, err := r.q.Query(ctx, customerSelect+` WHERE `+where, arg)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[customerRow])
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return row.toEntity(), nil
}

// GetByEmail obtiene un cliente por email (sin distinguir mayúsculas).
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.getOne(ctx, "customers.get_by_email", `c.email = lower($1)`, email)
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.getOne(ctx, "customers.get_by_id", `c.id = $1`, id)
}

// Create persiste un nuevo cliente. No inserta vouchers.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, password, avatar_url, total_spend, location,
		                       last_purchase_date, dragon_pass_id)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	lastPurchase := c.LastPurchaseDate
	if lastPurchase == entity.NoPurchaseDate {
		lastPurchase = ""
	}
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Email, nullIfEmpty(c.Phone), c.Password, nullIfEmpty(c.AvatarURL), c.TotalSpend,
		c.Location, nullIfEmpty(lastPurchase), c.ExternalMembershipID,
	).Scan(&c.ID, &c.CreatedAt)
	return wrapErr("customers.create", err)
}

// Update aplica solo los campos no nil del patch.
func (r *CustomerRepo) Update(ctx context.Context, id string, p repository.CustomerPatch) error {
	query := `
		UPDATE customers SET
			name               = COALESCE($2, name),
			email              = COALESCE(lower($3), email),
			phone              = COALESCE($4, phone),
			avatar_url         = COALESCE($5, avatar_url),
			total_spend        = COALESCE($6, total_spend),
			location           = COALESCE($7, location),
			last_purchase_date = COALESCE($8, last_purchase_date),
			dragon_pass_id     = COALESCE($9, dragon_pass_id),
			updated_at         = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id,
		p.Name, p.Email, p.Phone, p.AvatarURL, p.TotalSpend, p.Location, p.LastPurchaseDate, p.ExternalMembershipID,
	)
	if err != nil {
		return wrapErr("customers.update", err)
	}
	return affected(tag)
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *CustomerRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE customers SET password = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return wrapErr("customers.update_password", err)
	}
	return affected(tag)
}

// Delete elimina un cliente por ID; sus vouchers caen en cascada.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapErr("customers.delete", err)
	}
	return affected(tag)
}

// Emails lista los emails de todos los clientes (destinatarios de campañas).
func (r *CustomerRepo) Emails(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT email FROM customers ORDER BY created_at`)
	if err != nil {
		return nil, wrapErr("customers.emails", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapErr("customers.emails", err)
	}
	return emails, nil
}
