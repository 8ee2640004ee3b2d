package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (ventas atribuidas a afiliados).
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: track(q, "transactions")}
}

const transactionColumns = `id, partner_id, customer_name, product_name, sale_value, commission_value, status,
	date, scheduled_date, archived, created_at`

type transactionRow struct {
	ID              string          `db:"id"`
	PartnerID       string          `db:"partner_id"`
	CustomerName    string          `db:"customer_name"`
	ProductName     string          `db:"product_name"`
	SaleValue       decimal.Decimal `db:"sale_value"`
	CommissionValue decimal.Decimal `db:"commission_value"`
	Status          string          `db:"status"`
	Date            time.Time       `db:"date"`
	ScheduledDate   *time.Time      `db:"scheduled_date"`
	Archived        bool            `db:"archived"`
	CreatedAt       time.Time       `db:"created_at"`
}

func (r transactionRow) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              r.ID,
		PartnerID:       r.PartnerID,
		CustomerName:    r.CustomerName,
		ProductName:     r.ProductName,
		SaleValue:       r.SaleValue,
		CommissionValue: r.CommissionValue,
		Status:          entity.TransactionStatus(r.Status),
		Date:            r.Date,
		ScheduledDate:   r.ScheduledDate,
		Archived:        r.Archived,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *TransactionRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[transactionRow])
	if err != nil {
		return nil, wrapErr(op, err)
	}
	out := make([]*entity.Transaction, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// List devuelve todas las transacciones, la más reciente primero.
func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.list(ctx, "transactions.list", `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC`)
}

func (r *TransactionRepo) ListByPartner(ctx context.Context, partnerID string) ([]*entity.Transaction, error) {
	return r.list(ctx, "transactions.list_by_partner",
		`SELECT `+transactionColumns+` FROM transactions WHERE partner_id = $1 ORDER BY date DESC`, partnerID)
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO transactions (partner_id, customer_name, product_name, sale_value, commission_value, status,
		                          date, scheduled_date, archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		t.PartnerID, t.CustomerName, t.ProductName, t.SaleValue, t.CommissionValue, string(t.Status),
		t.Date, t.ScheduledDate, t.Archived,
	).Scan(&t.ID, &t.CreatedAt)
	return wrapErr("transactions.create", err)
}

func (r *TransactionRepo) Update(ctx context.Context, id string, p repository.TransactionPatch) error {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE transactions SET
			status         = COALESCE($2, status),
			archived       = COALESCE($3, archived),
			scheduled_date = COALESCE($4, scheduled_date)
		WHERE id = $1`, id, status, p.Archived, p.ScheduledDate)
	if err != nil {
		return wrapErr("transactions.update", err)
	}
	return affected(tag)
}
