package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"rentpay/config"
)

const driverName = "postgres"

// Connection splits reads onto a replica. Anything that must observe its own
// writes (versioned updates, dedupe checks) goes through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN builds the connection URL for node. extra is appended to the query string.
func DSN(cfg *config.Config, node config.PostgresNode, extra url.Values) string {
	query := url.Values{}
	if node.SSLMode != "" {
		query.Set("sslmode", node.SSLMode)
	}

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     cfg.DB.Postgres.Prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(cfg *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	pg := cfg.DB.Postgres
	logger := log.With().Str("role", role).Str("host", node.Host).Str("db", pg.Prefix+node.Name).Logger()

	attempt := 0

	db, err := backoff.Retry(context.Background(), func() (*sqlx.DB, error) {
		attempt++

		db, err := sqlx.Connect(driverName, DSN(cfg, node, nil))
		if err != nil {
			logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

			return nil, err
		}

		return db, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(pg.RetryWaitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(pg.MaxRetry, 1))),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed connecting to database")
	}

	db.SetMaxOpenConns(pg.MaxOpenConns)
	db.SetMaxIdleConns(pg.MaxIdleConns)

	logger.Info().Msg("Connected to database")

	return db
}

// WithTransaction runs fn inside a write transaction, committing on success
// and rolling back on error or panic.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
