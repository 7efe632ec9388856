package store

// Postgres repository implementations for the catalog workflows.

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"locallibrary/internal/catalog"
)

const uniqueViolation = "23505"

// mapWriteErr turns a unique-index violation into catalog.ErrConflict so
// the workflows can react to it; everything else passes through untouched.
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return catalog.ErrConflict
	}
	return err
}
