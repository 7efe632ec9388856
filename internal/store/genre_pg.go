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

type GenrePG struct {
	db *pgxpool.Pool
}

func NewGenrePG(db *pgxpool.Pool) *GenrePG {
	return &GenrePG{db: db}
}

func (r *GenrePG) List(ctx context.Context) ([]entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GenrePG) GetByID(ctx context.Context, id string) (entity.Genre, error) {
	var g entity.Genre
	err := r.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Genre{}, catalog.ErrNotFound
		}
		return entity.Genre{}, err
	}
	return g, nil
}

// GetByName matches case-insensitively, mirroring the unique index.
func (r *GenrePG) GetByName(ctx context.Context, name string) (entity.Genre, error) {
	var g entity.Genre
	err := r.db.QueryRow(ctx, `SELECT id, name FROM genres WHERE lower(name) = lower($1)`, name).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Genre{}, catalog.ErrNotFound
		}
		return entity.Genre{}, err
	}
	return g, nil
}

func (r *GenrePG) Insert(ctx context.Context, g entity.Genre) (string, error) {
	id := uuid.New().String()
	if _, err := r.db.Exec(ctx, `INSERT INTO genres (id, name) VALUES ($1, $2)`, id, g.Name); err != nil {
		return "", mapWriteErr(err)
	}
	return id, nil
}

func (r *GenrePG) Update(ctx context.Context, g entity.Genre) error {
	tag, err := r.db.Exec(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, g.ID, g.Name)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *GenrePG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *GenrePG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM genres`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
