// Package reservation keeps unique slugs per scope in Postgres.
//
// The slug resolver only checks for existence, so two writers can pick the
// same candidate. Reservations close that gap: the (scope, slug) primary key
// rejects the loser's insert and Service.Reserve resolves again, a bounded
// number of times, before returning ErrConflict.
//
//	if err := db.Migrate(ctx, pool, reservation.Migrations, reservation.MigrationsDir, cfg.MigrationsTable, log); err != nil {
//		return err
//	}
//	svc := reservation.NewService(reservation.NewStore(pool), normalizer, slugCfg.Defaults())
//	r, err := svc.Reserve(ctx, "articles", "Hello, World!", "42")
//	// r.Slug == "Hello-World"
//
// Reserving again with the same key and text returns the stored reservation.
// A changed text renames it unless regeneration on update is disabled.
package reservation
