package slugstore

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// SQLQuerier is the subset of database/sql used by SQL.
// Satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type SQLQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLOption configures an SQL checker.
type SQLOption func(*SQL)

// WithPlaceholder sets the bind parameter style.
// Default: sq.Question
func WithPlaceholder(ph sq.PlaceholderFormat) SQLOption {
	return func(s *SQL) {
		if ph != nil {
			s.placeholder = ph
		}
	}
}

// WithSQLKeyColumn sets the primary key column compared against excludeKey.
// Default: "id"
func WithSQLKeyColumn(column string) SQLOption {
	return func(s *SQL) {
		if column != "" {
			s.keyColumn = column
		}
	}
}

// WithSQLScope adds equality conditions to every check.
func WithSQLScope(scope sq.Eq) SQLOption {
	return func(s *SQL) {
		s.scope = quoteEq(scope)
	}
}

// SQL checks slugs through database/sql. Identifiers are quoted with double
// quotes, which SQLite and PostgreSQL accept.
type SQL struct {
	db          SQLQuerier
	placeholder sq.PlaceholderFormat
	keyColumn   string
	scope       sq.Eq
}

// NewSQL creates a checker over db.
func NewSQL(db SQLQuerier, opts ...SQLOption) *SQL {
	s := &SQL{db: db, placeholder: sq.Question, keyColumn: "id"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exists implements slug.ExistenceChecker.
func (s *SQL) Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	query, args, err := existsQuery(s.placeholder, table, column, s.keyColumn, candidate, excludeKey, s.scope)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrCheckFailed, err)
	}
	return exists, nil
}
