package slugstore

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx used by Postgres.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresOption configures a Postgres checker.
type PostgresOption func(*Postgres)

// WithKeyColumn sets the primary key column compared against excludeKey.
// Default: "id"
func WithKeyColumn(column string) PostgresOption {
	return func(p *Postgres) {
		if column != "" {
			p.keyColumn = column
		}
	}
}

// WithScope adds equality conditions to every check, for example a tenant
// column. Keys are column names and are quoted like table and column.
func WithScope(scope sq.Eq) PostgresOption {
	return func(p *Postgres) {
		p.scope = quoteEq(scope)
	}
}

// Postgres checks slugs with a single EXISTS query:
//
//	SELECT EXISTS (SELECT 1 FROM "articles" WHERE "slug" = $1 AND "id" <> $2 LIMIT 1)
type Postgres struct {
	db        Querier
	keyColumn string
	scope     sq.Eq
}

// NewPostgres creates a checker over db.
func NewPostgres(db Querier, opts ...PostgresOption) *Postgres {
	p := &Postgres{db: db, keyColumn: "id"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Exists implements slug.ExistenceChecker.
func (p *Postgres) Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	query, args, err := existsQuery(sq.Dollar, table, column, p.keyColumn, candidate, excludeKey, p.scope)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := p.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, errors.Join(ErrCheckFailed, err)
	}
	return exists, nil
}

// existsQuery builds the EXISTS check shared by the pgx and database/sql checkers.
func existsQuery(ph sq.PlaceholderFormat, table, column, keyColumn, candidate string, excludeKey any, scope sq.Eq) (string, []any, error) {
	if err := validIdentifiers(table, column); err != nil {
		return "", nil, err
	}

	inner := sq.Select("1").
		From(quoteIdent(table)).
		Where(sq.Eq{quoteIdent(column): candidate})
	if excludeKey != nil {
		inner = inner.Where(sq.NotEq{quoteIdent(keyColumn): excludeKey})
	}
	if len(scope) > 0 {
		inner = inner.Where(scope)
	}
	inner = inner.Limit(1)

	return sq.Select().
		Column(sq.Expr("EXISTS (?)", inner)).
		PlaceholderFormat(ph).
		ToSql()
}

// quoteIdent quotes a possibly schema-qualified name.
func quoteIdent(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

func quoteEq(eq sq.Eq) sq.Eq {
	if len(eq) == 0 {
		return nil
	}
	out := make(sq.Eq, len(eq))
	for k, v := range eq {
		out[quoteIdent(k)] = v
	}
	return out
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505). Callers that insert resolved slugs use it to
// detect a lost race and resolve again.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
