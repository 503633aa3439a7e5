// Package slugstore provides slug.ExistenceChecker implementations for the
// storage backends slugkit ships with.
//
// All checkers answer the same question: is candidate already stored in
// column of table, ignoring the record identified by excludeKey. None of them
// cache results.
//
//	pool, _ := db.Connect(ctx, cfg.DB)
//	checker := slugstore.NewPostgres(pool)
//	resolver := slug.NewResolver(slug.New(), checker)
//
// Available backends:
//
//   - [Memory]: in-process registry, for tests and single-instance daemons.
//   - [Postgres]: pgx pool or transaction, queries built with squirrel.
//   - [SQL]: any database/sql handle (SQLite, MySQL via placeholders).
//   - [Redis]: a hash registry per table and column, with atomic Claim.
//   - [Mongo]: a collection per table, a field per column.
//
// Table and column names are quoted as identifiers; values are always bound
// as parameters.
package slugstore
