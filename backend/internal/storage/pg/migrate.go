package pg

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers postgres:// for migrate
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/itchan-dev/mailadmin/shared/config"
	"github.com/itchan-dev/mailadmin/shared/logger"
	sharedpg "github.com/itchan-dev/mailadmin/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending up migrations. It uses its own connection so the
// application pool is not affected.
func Migrate(cfg config.Pg) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Log.Info("database schema is up to date", "version", version, "dirty", dirty)
	return nil
}

// MigrateDown reverts every migration. Used by tests to reset the schema.
func MigrateDown(cfg config.Pg) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to revert migrations: %w", err)
	}
	return nil
}

func newMigrate(cfg config.Pg) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, sharedpg.URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Log.Warn("failed to close migrate", "source_error", srcErr, "db_error", dbErr)
	}
}
