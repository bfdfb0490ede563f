package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicate is returned when an insert or update hits a unique
	// constraint. The storage-level constraint is the last line of
	// defense against concurrent duplicate inserts.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when an update or delete matched no rows.
	ErrNotFound = errors.New("record not found")
)

// isUniqueViolation reports whether err is a postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
