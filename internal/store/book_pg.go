package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary/internal/catalog"
	"locallibrary/internal/entity"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookWithAuthor = `
SELECT b.id, b.title, b.author_id, b.summary, b.isbn,
       a.id, a.first_name, a.family_name, a.date_of_birth, a.date_of_death
FROM books b
JOIN authors a ON a.id = b.author_id
`

func scanBookWithAuthor(row pgx.Row) (entity.Book, error) {
	var (
		b entity.Book
		a entity.Author
	)
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN,
		&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
	if err != nil {
		return entity.Book{}, err
	}
	b.Author = &a
	return b, nil
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.db.Query(ctx, bookWithAuthor+`ORDER BY b.title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func (r *BookPG) ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error) {
	rows, err := r.db.Query(ctx, bookWithAuthor+`WHERE b.author_id = $1 ORDER BY b.title`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func (r *BookPG) ListByGenre(ctx context.Context, genreID string) ([]entity.Book, error) {
	query := bookWithAuthor + `
	JOIN book_genres bg ON bg.book_id = b.id
	WHERE bg.genre_id = $1
	ORDER BY b.title
	`
	rows, err := r.db.Query(ctx, query, genreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func collectBooks(rows pgx.Rows) ([]entity.Book, error) {
	var books []entity.Book
	for rows.Next() {
		b, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID resolves the author and the genre references.
func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	b, err := scanBookWithAuthor(r.db.QueryRow(ctx, bookWithAuthor+`WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, catalog.ErrNotFound
		}
		return entity.Book{}, err
	}

	query := `
	SELECT g.id, g.name
	FROM genres g
	JOIN book_genres bg ON bg.genre_id = g.id
	WHERE bg.book_id = $1
	ORDER BY g.name
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return entity.Book{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return entity.Book{}, err
		}
		b.Genres = append(b.Genres, g)
		b.GenreIDs = append(b.GenreIDs, g.ID)
	}
	if err := rows.Err(); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Insert(ctx context.Context, b entity.Book) (string, error) {
	id := uuid.New().String()
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
		INSERT INTO books (id, title, author_id, summary, isbn)
		VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query, id, b.Title, b.AuthorID, b.Summary, b.ISBN); err != nil {
			return err
		}
		return insertBookGenres(ctx, tx, id, b.GenreIDs)
	})
	if err != nil {
		return "", mapWriteErr(err)
	}
	return id, nil
}

// Update replaces the row and its genre links in one transaction.
func (r *BookPG) Update(ctx context.Context, b entity.Book) error {
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
		UPDATE books
		SET title = $2, author_id = $3, summary = $4, isbn = $5
		WHERE id = $1
		`
		tag, err := tx.Exec(ctx, query, b.ID, b.Title, b.AuthorID, b.Summary, b.ISBN)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return catalog.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
			return err
		}
		return insertBookGenres(ctx, tx, b.ID, b.GenreIDs)
	})
	return mapWriteErr(err)
}

func insertBookGenres(ctx context.Context, tx pgx.Tx, bookID string, genreIDs []string) error {
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, bookID, genreID); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookPG) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BookPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *BookPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
