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

type BookInstancePG struct {
	db *pgxpool.Pool
}

func NewBookInstancePG(db *pgxpool.Pool) *BookInstancePG {
	return &BookInstancePG{db: db}
}

const instanceWithBook = `
SELECT bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back,
       b.id, b.title, b.author_id, b.summary, b.isbn
FROM book_instances bi
JOIN books b ON b.id = bi.book_id
`

func scanInstanceWithBook(row pgx.Row) (entity.BookInstance, error) {
	var (
		bi entity.BookInstance
		b  entity.Book
	)
	err := row.Scan(&bi.ID, &bi.BookID, &bi.Imprint, &bi.Status, &bi.DueBack,
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN)
	if err != nil {
		return entity.BookInstance{}, err
	}
	bi.Book = &b
	return bi, nil
}

func (r *BookInstancePG) List(ctx context.Context) ([]entity.BookInstance, error) {
	rows, err := r.db.Query(ctx, instanceWithBook+`ORDER BY b.title, bi.imprint`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instances []entity.BookInstance
	for rows.Next() {
		bi, err := scanInstanceWithBook(rows)
		if err != nil {
			return nil, err
		}
		instances = append(instances, bi)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *BookInstancePG) GetByID(ctx context.Context, id string) (entity.BookInstance, error) {
	bi, err := scanInstanceWithBook(r.db.QueryRow(ctx, instanceWithBook+`WHERE bi.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.BookInstance{}, catalog.ErrNotFound
		}
		return entity.BookInstance{}, err
	}
	return bi, nil
}

func (r *BookInstancePG) ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error) {
	query := `
	SELECT id, book_id, imprint, status, due_back
	FROM book_instances
	WHERE book_id = $1
	ORDER BY imprint
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instances []entity.BookInstance
	for rows.Next() {
		var bi entity.BookInstance
		if err := rows.Scan(&bi.ID, &bi.BookID, &bi.Imprint, &bi.Status, &bi.DueBack); err != nil {
			return nil, err
		}
		instances = append(instances, bi)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *BookInstancePG) Insert(ctx context.Context, bi entity.BookInstance) (string, error) {
	id := uuid.New().String()
	query := `
	INSERT INTO book_instances (id, book_id, imprint, status, due_back)
	VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, id, bi.BookID, bi.Imprint, bi.Status, bi.DueBack); err != nil {
		return "", mapWriteErr(err)
	}
	return id, nil
}

func (r *BookInstancePG) Update(ctx context.Context, bi entity.BookInstance) error {
	query := `
	UPDATE book_instances
	SET book_id = $2, imprint = $3, status = $4, due_back = $5
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, bi.ID, bi.BookID, bi.Imprint, bi.Status, bi.DueBack)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *BookInstancePG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *BookInstancePG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM book_instances`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *BookInstancePG) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM book_instances WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
