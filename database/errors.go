package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals no record for the given key. Handlers map it
	// to 404.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-key violation (slug, username).
	// Handlers map it to 400.
	ErrDuplicate = errors.New("duplicate key")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
