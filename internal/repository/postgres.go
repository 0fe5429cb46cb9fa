package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS widgets_id_seq;
CREATE TABLE IF NOT EXISTS widgets (
	id         BIGINT PRIMARY KEY DEFAULT nextval('widgets_id_seq'),
	name       TEXT NOT NULL,
	color      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) NextIDs(ctx context.Context, count int) ([]uint64, error) {
	if count <= 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, "SELECT nextval('widgets_id_seq') FROM generate_series(1, $1)", count)
	if err != nil {
		return nil, fmt.Errorf("failed to get next ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uint64])
	if err != nil {
		return nil, fmt.Errorf("failed to get next ids: %w", err)
	}
	return ids, nil
}

func (r *PostgresRepository) CreateBatch(ctx context.Context, widgets []WidgetRow) error {
	if len(widgets) == 0 {
		return nil
	}

	rows := make([][]any, len(widgets))
	for i, w := range widgets {
		rows[i] = []any{w.ID, w.Name, w.Color, w.CreatedAt}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"widgets"},
		[]string{"id", "name", "color", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert widgets: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uint64) (WidgetRow, error) {
	var row WidgetRow
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, color, created_at FROM widgets WHERE id = $1", id,
	).Scan(&row.ID, &row.Name, &row.Color, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return WidgetRow{}, ErrNotFound
	}
	if err != nil {
		return WidgetRow{}, fmt.Errorf("failed to find widget: %w", err)
	}
	return row, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]WidgetRow, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, color, created_at FROM widgets ORDER BY id LIMIT $1", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	widgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[WidgetRow])
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	return widgets, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM widgets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete widget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}
