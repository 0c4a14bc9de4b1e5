package thinknest

import "embed"

// MigrationsFS holds the versioned schema migrations applied by internal/database.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// EmailFS holds the notification templates, one directory per template.
//
//go:embed templates/emails
var EmailFS embed.FS
