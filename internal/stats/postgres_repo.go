package stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Counts(ctx context.Context) (Counts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM book_instances),
			(SELECT COUNT(*) FROM book_instances WHERE status = 'a'),
			(SELECT COUNT(*) FROM authors),
			(SELECT COUNT(*) FROM genres)
	`
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var c Counts
	err := r.db.QueryRow(timeoutCtx, query).Scan(
		&c.NumBooks, &c.NumInstances, &c.NumInstancesAvailable, &c.NumAuthors, &c.NumGenres,
	)
	return c, err
}
