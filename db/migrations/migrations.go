// Package migrations holds the schema of the durable account store.
package migrations

import "embed"

// FS embeds the SQL files of this directory for the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 2
