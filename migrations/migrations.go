// Package migrations embeds the SQL schema migrations for both supported
// database backends. Files are named NNN_name.sql and applied in order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
