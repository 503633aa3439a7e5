package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. Satisfied by *pgxpool.Pool, *pgx.Conn and pgxmock.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn in a transaction. The transaction is rolled back when fn
// returns an error or panics (the panic is re-raised) and committed otherwise.
func WithTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
