// Package migrations holds the schema for every supported database driver,
// one directory per golang-migrate driver name.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite3/*.sql mysql/*.sql
var FS embed.FS
