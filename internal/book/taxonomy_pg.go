package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Huntitude/locallibrary/internal/catalog"
)

// GenrePG and LanguagePG back the two small lookup tables books reference.
// Deleting a language clears books.language_id (ON DELETE SET NULL);
// deleting a genre only removes its join rows.

type GenrePG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewGenrePG(db *pgxpool.Pool, timeout time.Duration) *GenrePG {
	return &GenrePG{db: db, timeout: timeout}
}

func (r *GenrePG) Create(ctx context.Context, g *catalog.Genre) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.QueryRow(timeoutCtx,
		`INSERT INTO genres (id, name) VALUES (gen_random_uuid(), $1) RETURNING id`,
		g.Name,
	).Scan(&g.ID)
}

func (r *GenrePG) Get(ctx context.Context, id string) (catalog.Genre, error) {
	var g catalog.Genre
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx,
		`SELECT id, name FROM genres WHERE id = $1 LIMIT 1`, id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Genre{}, catalog.ErrNotFound
		}
		return catalog.Genre{}, err
	}
	return g, nil
}

func (r *GenrePG) Update(ctx context.Context, g *catalog.Genre) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `UPDATE genres SET name = $2 WHERE id = $1`, g.ID, g.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *GenrePG) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *GenrePG) List(ctx context.Context) ([]catalog.Genre, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT id, name FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Genre
	for rows.Next() {
		var g catalog.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

type LanguagePG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewLanguagePG(db *pgxpool.Pool, timeout time.Duration) *LanguagePG {
	return &LanguagePG{db: db, timeout: timeout}
}

func (r *LanguagePG) Create(ctx context.Context, l *catalog.Language) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.QueryRow(timeoutCtx,
		`INSERT INTO languages (id, name) VALUES (gen_random_uuid(), $1) RETURNING id`,
		l.Name,
	).Scan(&l.ID)
}

func (r *LanguagePG) Get(ctx context.Context, id string) (catalog.Language, error) {
	var l catalog.Language
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx,
		`SELECT id, name FROM languages WHERE id = $1 LIMIT 1`, id,
	).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Language{}, catalog.ErrNotFound
		}
		return catalog.Language{}, err
	}
	return l, nil
}

func (r *LanguagePG) Update(ctx context.Context, l *catalog.Language) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `UPDATE languages SET name = $2 WHERE id = $1`, l.ID, l.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *LanguagePG) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *LanguagePG) List(ctx context.Context) ([]catalog.Language, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT id, name FROM languages ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Language
	for rows.Next() {
		var l catalog.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
