package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgErrCheckViolation - SQLSTATE нарушения CHECK,
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrCheckViolation = "23514"

// PgCode возвращает SQLSTATE ошибки Postgres из цепочки err или "".
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsPgErrorWithCode(err error, code string) bool {
	return code != "" && PgCode(err) == code
}
