package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repos aceptan cualquiera de los dos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// trackedQuerier mide latencia y errores por tabla y tipo de sentencia.
type trackedQuerier struct {
	q     Querier
	table string
}

func track(q Querier, table string) Querier {
	if t, ok := q.(trackedQuerier); ok {
		q = t.q
	}
	return trackedQuerier{q: q, table: table}
}

func (t trackedQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := t.q.Exec(ctx, sql, args...)
	metrics.ObserveStorage(t.table, verb(sql), start, err != nil)
	return tag, err
}

func (t trackedQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := t.q.Query(ctx, sql, args...)
	metrics.ObserveStorage(t.table, verb(sql), start, err != nil)
	return rows, err
}

func (t trackedQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return trackedRow{row: t.q.QueryRow(ctx, sql, args...), table: t.table, op: verb(sql), start: time.Now()}
}

func (t trackedQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	start := time.Now()
	res := t.q.SendBatch(ctx, b)
	metrics.ObserveStorage(t.table, "batch", start, false)
	return res
}

type trackedRow struct {
	row   pgx.Row
	table string
	op    string
	start time.Time
}

func (r trackedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	// Sin filas no es un fallo del backend.
	metrics.ObserveStorage(r.table, r.op, r.start, err != nil && !errors.Is(err, pgx.ErrNoRows))
	return err
}

// verb devuelve la primera palabra de la sentencia (select, insert, update, delete, with).
func verb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
