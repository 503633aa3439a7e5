package reservation

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

// Migrations holds the goose migrations for the slug_reservations table.
// Apply them with db.Migrate(ctx, pool, reservation.Migrations, reservation.MigrationsDir, table, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS
