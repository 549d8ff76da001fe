package base

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Код помилки PostgreSQL для порушення унікальності
const uniqueViolationCode = "23505"

// Repository базовий репозиторій зі спільними методами
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository створює новий базовий репозиторій
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Pool повертає пул з'єднань
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

// QueryRow виконує запит і повертає один рядок
func (r *Repository) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return r.pool.QueryRow(ctx, query, args...)
}

// Query виконує запит і повертає множину рядків
func (r *Repository) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	return r.pool.Query(ctx, query, args...)
}

// ExecAffected виконує команду і повертає кількість зачеплених рядків
func (r *Repository) ExecAffected(ctx context.Context, query string, args ...interface{}) (int64, error) {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// IsNotFound перевіряє чи є помилка "рядок не знайдено"
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation перевіряє чи впала вставка через унікальний індекс.
// Для занять це означає, що слот (group_id, lesson_date) вже зайнятий
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
