package postgresql

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/inspection_data/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type MigrationDirection string

const (
	MigrateUp      MigrationDirection = "up"
	MigrateDown    MigrationDirection = "down"
	MigrateVersion MigrationDirection = "version"
)

func ParseMigrationDirection(s string) (MigrationDirection, error) {
	switch d := MigrationDirection(s); d {
	case MigrateUp, MigrateDown, MigrateVersion:
		return d, nil
	default:
		return "", fmt.Errorf("direction must be %q, %q or %q, got %q", MigrateUp, MigrateDown, MigrateVersion, s)
	}
}

// Migrate applies the embedded schema migrations. MigrateVersion only logs the current version.
func Migrate(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL, direction MigrationDirection) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	switch direction {
	case MigrateVersion:
		version, dirty, err := migrator.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		log.InfoContext(ctx, "current schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return nil

	case MigrateUp:
		err = migrator.Up()

	case MigrateDown:
		err = migrator.Down()

	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.InfoContext(ctx, "no migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied", slog.String("direction", string(direction)))

	return nil
}
