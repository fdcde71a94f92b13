// Package migrations embeds the database schema migrations applied by goose
// at server startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
