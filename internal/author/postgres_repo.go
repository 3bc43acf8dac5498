package author

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, a *catalog.Author) error {
	const query = `
		INSERT INTO authors (id, first_name, last_name, date_of_birth, date_of_death)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath,
	).Scan(&a.ID)
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (catalog.Author, error) {
	const query = `
		SELECT id, first_name, last_name, date_of_birth, date_of_death
		FROM authors WHERE id = $1 LIMIT 1
	`
	var a catalog.Author
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Author{}, catalog.ErrNotFound
		}
		return catalog.Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) Update(ctx context.Context, a *catalog.Author) error {
	const query = `
		UPDATE authors
		SET first_name = $2, last_name = $3, date_of_birth = $4, date_of_death = $5
		WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		a.ID, a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Delete removes the author. books.author_id references are cleared by the
// schema's ON DELETE SET NULL; the books themselves survive.
func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]catalog.Author, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
		SELECT id, first_name, last_name, date_of_birth, date_of_death
		FROM authors
		ORDER BY last_name ASC, first_name ASC
		LIMIT $1 OFFSET $2
	`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []catalog.Author
	for rows.Next() {
		var a catalog.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}
