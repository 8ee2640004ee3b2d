package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (paquetes de acceso a salas VIP).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: track(q, "products")}
}

const productColumns = `id, name, description, type, access_count, price, features, is_active, created_at`

type productRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Type        string          `db:"type"`
	AccessCount int             `db:"access_count"`
	Price       decimal.Decimal `db:"price"`
	Features    []string        `db:"features"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r productRow) toEntity() *entity.VoucherPack {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &entity.VoucherPack{
		ID:          r.ID,
		Name:        r.Name,
		Description: deref(r.Description),
		Type:        entity.VoucherType(r.Type),
		AccessCount: r.AccessCount,
		Price:       r.Price,
		Features:    features,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

// List devuelve el catálogo ordenado por tipo (Internacional antes que Nacional) y cantidad de accesos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.VoucherPack, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY type, access_count`)
	if err != nil {
		return nil, wrapErr("products.list", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, wrapErr("products.list", err)
	}
	out := make([]*entity.VoucherPack, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.VoucherPack, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return nil, wrapErr("products.get_by_id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, wrapErr("products.get_by_id", err)
	}
	return row.toEntity(), nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.VoucherPack) error {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (name, description, type, access_count, price, features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		p.Name, nullIfEmpty(p.Description), string(p.Type), p.AccessCount, p.Price, features, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	return wrapErr("products.create", err)
}

// Update actualiza precio y/o disponibilidad.
func (r *ProductRepo) Update(ctx context.Context, id string, p repository.ProductPatch) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET
			price     = COALESCE($2, price),
			is_active = COALESCE($3, is_active)
		WHERE id = $1`, id, p.Price, p.IsActive)
	if err != nil {
		return wrapErr("products.update", err)
	}
	return affected(tag)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapErr("products.delete", err)
	}
	return affected(tag)
}
