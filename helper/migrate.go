package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"spa/config"
	"spa/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"

	migrationsSource = "file://migrations/postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DatabaseURL builds the golang-migrate URL for the write database.
func DatabaseURL(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	extra := url.Values{}
	if pg.MigrationTable != "" {
		extra.Set("x-migrations-table", pg.MigrationTable)
	}

	return postgres.DSN(pg.Write, pg.Prefix, extra)
}

// Runner applies one migration action against the write database.
func Runner(cfg *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationsSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err = step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

var steps = map[string]func(*migrate.Migrate) error{
	ActionUp:      func(m *migrate.Migrate) error { return m.Up() },
	ActionDown:    func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp:  func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:    func(m *migrate.Migrate) error { return m.Down() },
	ActionVersion: func(*migrate.Migrate) error { return nil },
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
