// Package migrations contains the database migration files.
// Each migration registers itself via init(), so the package must be
// blank-imported by the CLI for the registry to be populated.
package migrations
