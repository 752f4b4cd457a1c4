package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/postgres"
)

const migrationsSource = "file://migrations/postgres"

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString := postgres.DSN(config, config.DB.Postgres.Write, url.Values{
		"x-migrations-table": {config.DB.Postgres.MigrationTable},
	})

	mig, err := migrate.New(migrationsSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// steps maps a direction to the migrate call that performs it.
var steps = map[string]func(*migrate.Migrate) error{
	"up":      (*migrate.Migrate).Up,
	"down":    func(m *migrate.Migrate) error { return m.Steps(-1) },
	"step-up": func(m *migrate.Migrate) error { return m.Steps(1) },
	"drop":    (*migrate.Migrate).Down,
}

// Runner applies one direction and logs the resulting schema version. Running with
// nothing to apply is not an error.
func Runner(config *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration direction %q", action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	log.Info().Str("direction", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
