package instance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
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

func (r *PostgresRepo) Create(ctx context.Context, bi *catalog.BookInstance) error {
	if bi.ID == "" {
		bi.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO book_instances (id, book_id, borrower_id, imprint, due_back, status, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		RETURNING version
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		bi.ID, bi.BookID, bi.BorrowerID, bi.Imprint, bi.DueBack, string(bi.Status),
	).Scan(&bi.Version)
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (catalog.BookInstance, error) {
	const query = `
		SELECT id, book_id, borrower_id, imprint, due_back, status, version
		FROM book_instances WHERE id = $1 LIMIT 1
	`
	var bi catalog.BookInstance
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&bi.ID, &bi.BookID, &bi.BorrowerID, &bi.Imprint, &bi.DueBack, &bi.Status, &bi.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.BookInstance{}, catalog.ErrNotFound
		}
		return catalog.BookInstance{}, err
	}
	return bi, nil
}

// Update persists the instance if no other writer has touched it since it
// was read. The version the caller holds must match the stored one.
func (r *PostgresRepo) Update(ctx context.Context, bi *catalog.BookInstance) error {
	const query = `
		UPDATE book_instances
		SET book_id = $2, borrower_id = $3, imprint = $4, due_back = $5, status = $6,
		    version = version + 1
		WHERE id = $1 AND version = $7
		RETURNING version
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		bi.ID, bi.BookID, bi.BorrowerID, bi.Imprint, bi.DueBack, string(bi.Status), bi.Version,
	).Scan(&bi.Version)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	// Either the row is gone or another writer bumped the version.
	var exists bool
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	if err := r.db.QueryRow(timeoutCtx2,
		`SELECT EXISTS (SELECT 1 FROM book_instances WHERE id = $1)`, bi.ID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return catalog.ErrConflict
	}
	return catalog.ErrNotFound
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]catalog.BookInstance, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Status != nil {
		clauses = append(clauses, fmt.Sprintf("status = $%d", argn))
		args = append(args, string(*q.Status))
		argn++
	}
	if q.BorrowerID != nil {
		clauses = append(clauses, fmt.Sprintf("borrower_id = $%d", argn))
		args = append(args, *q.BorrowerID)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM book_instances %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	dataSQL := fmt.Sprintf(`
		SELECT id, book_id, borrower_id, imprint, due_back, status, version
		FROM book_instances
		%s
		ORDER BY due_back ASC NULLS LAST, status ASC
		LIMIT $%d OFFSET $%d`,
		where, argn, argn+1)
	args = append(args, limit, q.Offset)

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []catalog.BookInstance
	for rows.Next() {
		var bi catalog.BookInstance
		if err := rows.Scan(&bi.ID, &bi.BookID, &bi.BorrowerID, &bi.Imprint, &bi.DueBack, &bi.Status, &bi.Version); err != nil {
			return nil, 0, err
		}
		out = append(out, bi)
	}
	return out, total, rows.Err()
}
