package query

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// errAny marks a case that must fail without matching a domain sentinel.
var errAny = errors.New("any error")

func checkViolation() error {
	return &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
}
