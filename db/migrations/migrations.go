package migrations

import "embed"

// FS embeds the JSON migration files stored in this directory. The
// golang-migrate library reads them via the iofs driver and runs each
// file's commands against the database.
//
//go:embed *.json
var FS embed.FS

const Version = 1
