package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo implementación de VoucherRepository.
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: track(q, "vouchers")}
}

const voucherColumns = `id, customer_id, pack_name, code, remaining_access, total_access, status, purchase_date,
	qr_code_url, created_at`

type voucherRow struct {
	ID              string    `db:"id"`
	CustomerID      string    `db:"customer_id"`
	PackName        string    `db:"pack_name"`
	Code            string    `db:"code"`
	RemainingAccess int       `db:"remaining_access"`
	TotalAccess     int       `db:"total_access"`
	Status          string    `db:"status"`
	PurchaseDate    string    `db:"purchase_date"`
	QRCodeURL       *string   `db:"qr_code_url"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r voucherRow) toEntity() *entity.Voucher {
	return &entity.Voucher{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		PackName:        r.PackName,
		Code:            r.Code,
		RemainingAccess: r.RemainingAccess,
		TotalAccess:     r.TotalAccess,
		Status:          entity.VoucherStatus(r.Status),
		PurchaseDate:    r.PurchaseDate,
		QRCodeURL:       deref(r.QRCodeURL),
		CreatedAt:       r.CreatedAt,
	}
}

// voucherParams es el orden de parámetros de los INSERT ($1..$9).
func voucherParams(customerID string, v *entity.Voucher) []any {
	return []any{
		v.ID, customerID, v.PackName, v.Code, v.RemainingAccess, v.TotalAccess, string(v.Status),
		v.PurchaseDate, nullIfEmpty(v.QRCodeURL),
	}
}

// Create persiste un voucher; si ID viene vacío lo asigna la base.
func (r *VoucherRepo) Create(ctx context.Context, v *entity.Voucher) error {
	query := `
		INSERT INTO vouchers (id, customer_id, pack_name, code, remaining_access, total_access, status,
		                      purchase_date, qr_code_url)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, voucherParams(v.CustomerID, v)...).Scan(&v.ID, &v.CreatedAt)
	return wrapErr("vouchers.create", err)
}

// InsertIfAbsent envía un INSERT ... ON CONFLICT DO NOTHING por voucher en un único batch.
// Un voucher ya existente no devuelve fila y no figura en el resultado.
func (r *VoucherRepo) InsertIfAbsent(ctx context.Context, customerID string, vouchers []entity.Voucher) ([]string, error) {
	if len(vouchers) == 0 {
		return nil, nil
	}
	query := `
		INSERT INTO vouchers (id, customer_id, pack_name, code, remaining_access, total_access, status,
		                      purchase_date, qr_code_url)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
		RETURNING id`
	batch := &pgx.Batch{}
	for i := range vouchers {
		batch.Queue(query, voucherParams(customerID, &vouchers[i])...)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	inserted := make([]string, 0, len(vouchers))
	for range vouchers {
		var id string
		err := br.QueryRow().Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, wrapErr("vouchers.insert_if_absent", err)
		}
		inserted = append(inserted, id)
	}
	return inserted, nil
}

// GetByID obtiene un voucher por ID.
func (r *VoucherRepo) GetByID(ctx context.Context, id string) (*entity.Voucher, error) {
	rows, err := r.q.Query(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return nil, wrapErr("vouchers.get_by_id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[voucherRow])
	if err != nil {
		return nil, wrapErr("vouchers.get_by_id", err)
	}
	return row.toEntity(), nil
}

// Update actualiza accesos restantes y/o estado.
func (r *VoucherRepo) Update(ctx context.Context, id string, p repository.VoucherPatch) error {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE vouchers SET
			remaining_access = COALESCE($2, remaining_access),
			status           = COALESCE($3, status)
		WHERE id = $1`, id, p.RemainingAccess, status)
	if err != nil {
		return wrapErr("vouchers.update", err)
	}
	return affected(tag)
}

// Redeem descuenta un acceso en una sola sentencia; al llegar a 0 el voucher pasa a Resgatado.
func (r *VoucherRepo) Redeem(ctx context.Context, id string) (*entity.Voucher, error) {
	rows, err := r.q.Query(ctx, `
		UPDATE vouchers SET
			remaining_access = remaining_access - 1,
			status = CASE WHEN remaining_access - 1 = 0 THEN 'Resgatado' ELSE status END
		WHERE id = $1 AND remaining_access > 0 AND status = 'Ativo'
		RETURNING `+voucherColumns, id)
	if err != nil {
		return nil, wrapErr("vouchers.redeem", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[voucherRow])
	if err == nil {
		return row.toEntity(), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrapErr("vouchers.redeem", err)
	}
	// Sin filas: o no existe o ya no tiene accesos.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrNoAccessLeft
}
