package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository sobre admin_profile (una fila) y admin_users.
type AdminRepo struct {
	q Querier
}

func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: track(q, "admin")}
}

const adminColumns = `id, name, email, password, role, avatar_url, last_active, created_at`

type adminRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Password   string    `db:"password"`
	Role       string    `db:"role"`
	AvatarURL  *string   `db:"avatar_url"`
	LastActive time.Time `db:"last_active"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r adminRow) toEntity() *entity.AdminUser {
	return &entity.AdminUser{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Role:       entity.AdminRole(r.Role),
		AvatarURL:  deref(r.AvatarURL),
		LastActive: r.LastActive,
		CreatedAt:  r.CreatedAt,
	}
}

func (r *AdminRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.AdminUser, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[adminRow])
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return row.toEntity(), nil
}

// GetProfile devuelve el perfil del administrador (la fila más antigua si hubiera varias).
func (r *AdminRepo) GetProfile(ctx context.Context) (*entity.AdminUser, error) {
	return r.getOne(ctx, "admin.get_profile",
		`SELECT `+adminColumns+` FROM admin_profile ORDER BY created_at LIMIT 1`)
}

// patchArgs es el orden de $2..$6 de los UPDATE de perfil y staff.
func patchArgs(p repository.AdminPatch) []any {
	return []any{p.Name, p.Email, p.Password, p.AvatarURL, p.LastActive}
}

const adminPatchSet = `
	name        = COALESCE($2, name),
	email       = COALESCE(lower($3), email),
	password    = COALESCE($4, password),
	avatar_url  = COALESCE($5, avatar_url),
	last_active = COALESCE($6, last_active)`

func (r *AdminRepo) UpdateProfile(ctx context.Context, p repository.AdminPatch) error {
	profile, err := r.GetProfile(ctx)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, `UPDATE admin_profile SET`+adminPatchSet+` WHERE id = $1`,
		append([]any{profile.ID}, patchArgs(p)...)...)
	if err != nil {
		return wrapErr("admin.update_profile", err)
	}
	return affected(tag)
}

func (r *AdminRepo) ListStaff(ctx context.Context) ([]*entity.AdminUser, error) {
	rows, err := r.q.Query(ctx, `SELECT `+adminColumns+` FROM admin_users ORDER BY created_at`)
	if err != nil {
		return nil, wrapErr("admin.list_staff", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[adminRow])
	if err != nil {
		return nil, wrapErr("admin.list_staff", err)
	}
	out := make([]*entity.AdminUser, 0, len(list))
	for _, row := range list {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *AdminRepo) GetStaffByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	return r.getOne(ctx, "admin.get_staff_by_email",
		`SELECT `+adminColumns+` FROM admin_users WHERE email = lower($1)`, email)
}

func (r *AdminRepo) AddStaff(ctx context.Context, u *entity.AdminUser) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO admin_users (name, email, password, role, avatar_url, last_active)
		VALUES ($1, lower($2), $3, $4, $5, now())
		RETURNING id, last_active, created_at`,
		u.Name, u.Email, u.Password, string(u.Role), nullIfEmpty(u.AvatarURL),
	).Scan(&u.ID, &u.LastActive, &u.CreatedAt)
	return wrapErr("admin.add_staff", err)
}

func (r *AdminRepo) UpdateStaff(ctx context.Context, id string, p repository.AdminPatch) error {
	tag, err := r.q.Exec(ctx, `UPDATE admin_users SET`+adminPatchSet+` WHERE id = $1`,
		append([]any{id}, patchArgs(p)...)...)
	if err != nil {
		return wrapErr("admin.update_staff", err)
	}
	return affected(tag)
}

func (r *AdminRepo) RemoveStaff(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "admin.remove_staff", "admin_users", id)
}
