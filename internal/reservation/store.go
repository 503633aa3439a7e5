package reservation

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/slugkit/pkg/db"
	"github.com/dmitrymomot/slugkit/pkg/slugstore"
)

const (
	tableName  = "slug_reservations"
	slugColumn = "slug"
	keyColumn  = "record_key"
)

var columns = []string{"scope", "slug", "record_key", "source_text", "created_at", "updated_at"}

// DB is the subset of pgx used by Store.
// Satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reservation binds a slug to a record key inside a scope.
type Reservation struct {
	Scope      string    `json:"scope"`
	Slug       string    `json:"slug"`
	Key        string    `json:"key"`
	SourceText string    `json:"source_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store persists reservations in Postgres. The primary key on (scope, slug)
// is what makes concurrent reservations safe; Exists is only a hint.
type Store struct {
	db DB
	qb sq.StatementBuilderType
}

// NewStore creates a Store over db.
func NewStore(db DB) *Store {
	return &Store{db: db, qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

// InTx runs fn with a Store bound to a single transaction, committed when
// fn returns nil. Connections that cannot begin transactions run fn on s.
func (s *Store) InTx(ctx context.Context, fn func(*Store) error) error {
	b, ok := s.db.(db.TxBeginner)
	if !ok {
		return fn(s)
	}

	var fnErr error
	err := db.WithTx(ctx, b, func(tx pgx.Tx) error {
		fnErr = fn(&Store{db: tx, qb: s.qb})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Join(ErrStore, err)
	}
	return err
}

// Exists implements slug.ExistenceChecker. The table argument is the
// reservation scope; column is ignored since slugs live in one column.
func (s *Store) Exists(ctx context.Context, scope, _, candidate string, excludeKey any) (bool, error) {
	checker := slugstore.NewPostgres(s.db,
		slugstore.WithKeyColumn(keyColumn),
		slugstore.WithScope(sq.Eq{"scope": scope}),
	)
	return checker.Exists(ctx, tableName, slugColumn, candidate, excludeKey)
}

// Insert stores r unless the slug or the key is already taken in the scope.
// It reports false without error when the row was not inserted.
func (s *Store) Insert(ctx context.Context, r *Reservation) (bool, error) {
	query, args, err := s.qb.Insert(tableName).
		Columns("scope", "slug", "record_key", "source_text").
		Values(r.Scope, r.Slug, r.Key, r.SourceText).
		Suffix("ON CONFLICT DO NOTHING RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}

	err = s.db.QueryRow(ctx, query, args...).Scan(&r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}
	return true, nil
}

// Rename moves the reservation of key to a new slug. It reports false
// without error when the new slug is already taken in the scope.
func (s *Store) Rename(ctx context.Context, r *Reservation) (bool, error) {
	query, args, err := s.qb.Update(tableName).
		Set("slug", r.Slug).
		Set("source_text", r.SourceText).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"scope": r.Scope, "record_key": r.Key}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return false, errors.Join(ErrStore, err)
	}

	err = s.db.QueryRow(ctx, query, args...).Scan(&r.CreatedAt, &r.UpdatedAt)
	switch {
	case err == nil:
		return true, nil
	case slugstore.IsUniqueViolation(err):
		return false, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, ErrNotFound
	default:
		return false, errors.Join(ErrStore, err)
	}
}

// Get returns the reservation of slug in scope.
func (s *Store) Get(ctx context.Context, scope, slug string) (*Reservation, error) {
	return s.getOne(ctx, sq.Eq{"scope": scope, "slug": slug})
}

// GetByKey returns the reservation held by key in scope.
func (s *Store) GetByKey(ctx context.Context, scope, key string) (*Reservation, error) {
	return s.getOne(ctx, sq.Eq{"scope": scope, "record_key": key})
}

func (s *Store) getOne(ctx context.Context, where sq.Eq) (*Reservation, error) {
	query, args, err := s.qb.Select(columns...).
		From(tableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}

	var r Reservation
	err = s.db.QueryRow(ctx, query, args...).
		Scan(&r.Scope, &r.Slug, &r.Key, &r.SourceText, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	return &r, nil
}

// Delete removes the reservation of slug in scope.
func (s *Store) Delete(ctx context.Context, scope, slug string) error {
	query, args, err := s.qb.Delete(tableName).
		Where(sq.Eq{"scope": scope, "slug": slug}).
		ToSql()
	if err != nil {
		return errors.Join(ErrStore, err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
