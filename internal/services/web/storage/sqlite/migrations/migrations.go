// Package migrations embeds the contact inbox schema.
package migrations

import "embed"

// FS holds the SQL migrations applied on open.
//
//go:embed *.sql
var FS embed.FS
