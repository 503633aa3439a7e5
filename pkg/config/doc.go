// Package config loads typed configuration from the environment.
//
// A .env file in the working directory is loaded once, on first use, without
// overriding variables that are already set. Structs are parsed with
// caarlos0/env and cached per type, so every caller asking for the same type
// sees the same values.
//
//	var cfg struct {
//		Slug slug.Config
//		DB   db.Config
//	}
//	config.MustLoad(&cfg)
//
// Load returns parse errors; MustLoad panics on them and is meant for
// startup code.
package config
