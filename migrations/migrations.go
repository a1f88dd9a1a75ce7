// Package migrations embeds the goose SQL migrations so the server
// binary can apply them without a copy of the source tree on disk.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
