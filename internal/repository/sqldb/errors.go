package sqldb

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass names the kind of database failure for logs.
type ErrorClass string

const (
	ClassForeignKey   ErrorClass = "foreign_key_violation"
	ClassNotNull      ErrorClass = "not_null_violation"
	ClassUnique       ErrorClass = "unique_violation"
	ClassInvalidInput ErrorClass = "invalid_input"
	ClassConnection   ErrorClass = "connection"
	ClassUnknown      ErrorClass = "unknown"
)

// Classify inspects err for a PostgreSQL or SQLite driver error.
func Classify(err error) ErrorClass {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return ClassForeignKey
		case "23502":
			return ClassNotNull
		case "23505":
			return ClassUnique
		}
		switch {
		case strings.HasPrefix(pgErr.Code, "22"):
			return ClassInvalidInput
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "28"), pgErr.Code == "3D000":
			return ClassConnection
		}
		return ClassUnknown
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return ClassForeignKey
		case sqlite3.ErrConstraintNotNull:
			return ClassNotNull
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ClassUnique
		case sqlite3.ErrConstraintCheck:
			return ClassInvalidInput
		}
		switch liteErr.Code {
		case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig:
			return ClassInvalidInput
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrAuth:
			return ClassConnection
		}
		return ClassUnknown
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return ClassConnection
	}
	return ClassUnknown
}
