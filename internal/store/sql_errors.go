package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DBErrorKind is the result type returned by [ErrorClassificator.Classify].
// It names the constraint a failed statement ran into, so repositories can
// translate driver errors into store sentinels without knowing the driver.
type DBErrorKind int

const (
	// OtherError is the classification of every error that is not a known
	// constraint violation, including nil.
	OtherError DBErrorKind = iota

	// UniqueViolation is a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation is a FOREIGN KEY constraint failure.
	ForeignKeyViolation

	// CheckViolation is a CHECK constraint failure.
	CheckViolation
)

// ErrorClassificator maps a driver error to a [DBErrorKind].
type ErrorClassificator interface {
	Classify(err error) DBErrorKind
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) DBErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return OtherError
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	}

	return OtherError
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) DBErrorKind {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return OtherError
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	}

	return OtherError
}
