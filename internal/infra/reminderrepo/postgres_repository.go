package reminderrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/astro-dates/internal/domain/reminder"
)

// PostgresRepository implements reminder.Repository using pgx.
//
// Expected schema:
//
//	CREATE TABLE reminders (
//	    id         UUID PRIMARY KEY,
//	    email      TEXT NOT NULL,
//	    test_date  TEXT NOT NULL,
//	    test_year  TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    UNIQUE (email, test_date)
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Save(ctx context.Context, rem reminder.Reminder) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reminders (id, email, test_date, test_year, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rem.ID, rem.Email, rem.Date, rem.Year, rem.CreatedAt)
	return err
}

func (r *PostgresRepository) Exists(ctx context.Context, email, date string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reminders WHERE email = $1 AND test_date = $2
		)
	`, email, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

var _ reminder.Repository = (*PostgresRepository)(nil)
