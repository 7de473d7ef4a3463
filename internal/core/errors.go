package core

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SchemaError reports a DDL failure while creating or verifying a table.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: failed to create table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SeedError reports a failed (and rolled back) reset-and-seed transaction.
type SeedError struct {
	Stage string // "truncate", "insert product", "commit", ...
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed: %s failed: %v", e.Stage, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }

// DuplicateUsernameError is returned by RegisterUser when the username is
// already taken. Recoverable — the caller shows it to the user.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// UnknownTableError is returned when a caller asks for a table outside the
// fixed enumeration. Raised before any SQL is sent to the database.
type UnknownTableError struct {
	Name string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q", e.Name)
}

// ConstraintViolationError reports a check, foreign-key, or unique violation
// on a write. The enclosing transaction has been rolled back.
type ConstraintViolationError struct {
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint %s violated on table %s: %v", e.Constraint, e.Table, e.Err)
	}
	return fmt.Sprintf("constraint violated on table %s: %v", e.Table, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

// ConnectionError reports that the database was unreachable or the
// connection failed mid-request.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SQLSTATE classes used to translate pgconn errors into the typed taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// classifyWriteError maps a storage error from a write path to the typed
// taxonomy. Integrity violations become *ConstraintViolationError; anything
// else is treated as a connection/infrastructure failure.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			return &ConstraintViolationError{
				Table:      pgErr.TableName,
				Constraint: pgErr.ConstraintName,
				Err:        err,
			}
		}
	}
	return &ConnectionError{Err: err}
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
