// Package flooow holds assets embedded at the module root.
package flooow

import "embed"

// MigrationsDir is the directory of Migrations that goose reads.
const MigrationsDir = "migrations"

// Migrations contains the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
