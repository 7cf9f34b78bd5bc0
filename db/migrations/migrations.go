package migrations

import "embed"

// FS holds the SQL migrations of the ads schema: the catalog table, the
// per-day counter buckets and the unique-click map. golang-migrate reads
// them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
