// internal/database/migrate.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/thinknest"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction selects which way Migrate walks the migration history.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func newMigrator(db *sql.DB, schema string) (*migrate.Migrate, error) {
	source, err := iofs.New(thinknest.MigrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{SchemaName: schema})
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("initializing migrations: %w", err)
	}
	return m, nil
}

// Migrate applies (Up) or reverts (Down) steps migrations. steps <= 0 means all of them.
func Migrate(db *sql.DB, schema string, dir Direction, steps int, logger *slog.Logger) error {
	m, err := newMigrator(db, schema)
	if err != nil {
		return err
	}

	switch {
	case steps > 0 && dir == Down:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case dir == Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations %s: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	switch {
	case errors.Is(verr, migrate.ErrNilVersion):
		logger.Info("database has no applied migrations")
	case dirty:
		logger.Warn("database migration is dirty", "version", version)
	default:
		logger.Info("database migrations complete", "version", version, "direction", dir)
	}

	return nil
}

// Version reports the currently applied migration version.
func Version(db *sql.DB, schema string) (uint, bool, error) {
	m, err := newMigrator(db, schema)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
