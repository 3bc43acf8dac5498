package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PostgresRepo) Create(ctx context.Context, b *catalog.Book, genreIDs []string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const insertSQL = `
		INSERT INTO books (id, title, author_id, summary, isbn, language_id, book_added)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = tx.QueryRow(timeoutCtx, insertSQL,
		b.Title, b.AuthorID, b.Summary, b.ISBN, b.LanguageID, b.BookAdded,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.NewValidationError("isbn", "already in use by another book")
		}
		return err
	}

	for _, gid := range genreIDs {
		if _, err := tx.Exec(timeoutCtx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			b.ID, gid,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return err
	}

	got, err := r.Get(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (catalog.Book, error) {
	const query = `
		SELECT id, title, author_id, summary, isbn, language_id, book_added
		FROM books WHERE id = $1 LIMIT 1
	`
	var b catalog.Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.LanguageID, &b.BookAdded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Book{}, catalog.ErrNotFound
		}
		return catalog.Book{}, err
	}

	genres, err := r.genresFor(ctx, []string{b.ID})
	if err != nil {
		return catalog.Book{}, err
	}
	b.Genres = genres[b.ID]
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *catalog.Book) error {
	const query = `
		UPDATE books
		SET title = $2, author_id = $3, summary = $4, isbn = $5, language_id = $6, book_added = $7
		WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		b.ID, b.Title, b.AuthorID, b.Summary, b.ISBN, b.LanguageID, b.BookAdded,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.NewValidationError("isbn", "already in use by another book")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// SetGenres replaces the book's genre set.
func (r *PostgresRepo) SetGenres(ctx context.Context, bookID string, genreIDs []string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	if _, err := tx.Exec(timeoutCtx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	for _, gid := range genreIDs {
		if _, err := tx.Exec(timeoutCtx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			bookID, gid,
		); err != nil {
			return err
		}
	}
	return tx.Commit(timeoutCtx)
}

// Delete removes the book. book_instances.book_id references are cleared
// by ON DELETE SET NULL so existing copies keep their history.
func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]catalog.Book, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
		SELECT id, title, author_id, summary, isbn, language_id, book_added
		FROM books
		ORDER BY title ASC
		LIMIT $1 OFFSET $2
	`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []catalog.Book
	var ids []string
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.LanguageID, &b.BookAdded); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		genres, err := r.genresFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range out {
			out[i].Genres = genres[out[i].ID]
		}
	}
	return out, total, nil
}

// genresFor loads the genre sets for the given books in one query.
func (r *PostgresRepo) genresFor(ctx context.Context, bookIDs []string) (map[string][]catalog.Genre, error) {
	const query = `
		SELECT bg.book_id, g.id, g.name
		FROM book_genres bg
		JOIN genres g ON g.id = bg.genre_id
		WHERE bg.book_id = ANY($1)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]catalog.Genre)
	for rows.Next() {
		var bookID string
		var g catalog.Genre
		if err := rows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return nil, err
		}
		out[bookID] = append(out[bookID], g)
	}
	return out, rows.Err()
}
