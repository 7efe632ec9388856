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

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) List(ctx context.Context) ([]entity.Author, error) {
	query := `
	SELECT id, first_name, family_name, date_of_birth, date_of_death
	FROM authors
	ORDER BY family_name, first_name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *AuthorPG) GetByID(ctx context.Context, id string) (entity.Author, error) {
	query := `
	SELECT id, first_name, family_name, date_of_birth, date_of_death
	FROM authors
	WHERE id = $1
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, catalog.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) Insert(ctx context.Context, a entity.Author) (string, error) {
	id := uuid.New().String()
	query := `
	INSERT INTO authors (id, first_name, family_name, date_of_birth, date_of_death)
	VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, id, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath); err != nil {
		return "", mapWriteErr(err)
	}
	return id, nil
}

func (r *AuthorPG) Update(ctx context.Context, a entity.Author) error {
	query := `
	UPDATE authors
	SET first_name = $2, family_name = $3, date_of_birth = $4, date_of_death = $5
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *AuthorPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *AuthorPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM authors`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
