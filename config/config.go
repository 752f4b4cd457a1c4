package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresNode is one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			MaxWrites     int  `envconfig:"MAX_WRITES"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int          `envconfig:"MAX_RETRY"`
			RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string       `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
			Prefix         string       `envconfig:"PREFIX"`
			MaxOpenConns   int          `envconfig:"MAX_OPEN_CONNS" default:"10"`
			MaxIdleConns   int          `envconfig:"MAX_IDLE_CONNS" default:"10"`
			Read           PostgresNode `envconfig:"READ"`
			Write          PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			Booking string `envconfig:"BOOKING"  default:"booking.events"`
			Escrow  string `envconfig:"ESCROW"   default:"escrow.events"`
			Payment string `envconfig:"PAYMENT"  default:"payment.events"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	Settlement struct {
		RPCURL          string `envconfig:"RPC_URL"`
		ChainID         int64  `envconfig:"CHAIN_ID"`
		WeiPerMinorUnit string `envconfig:"WEI_PER_MINOR_UNIT" default:"10000000000000000"`
		FinalityDepth   uint64 `envconfig:"FINALITY_DEPTH"     default:"1"`
		EscrowAddress   string `envconfig:"ESCROW_ADDRESS"`
	} `envconfig:"SETTLEMENT"`

	Payment struct {
		Currency string `envconfig:"CURRENCY" default:"USD"`
		Poller   struct {
			Interval     time.Duration `envconfig:"INTERVAL"      default:"5s"`
			MaxAttempts  int           `envconfig:"MAX_ATTEMPTS"  default:"60"`
			QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT" default:"10s"`
		} `envconfig:"POLLER"`
	} `envconfig:"PAYMENT"`

	Booking struct {
		DefaultFeeBasisPoints int64 `envconfig:"DEFAULT_FEE_BASIS_POINTS" default:"1000"`
		DefaultMinNights      int   `envconfig:"DEFAULT_MIN_NIGHTS"       default:"1"`
		DefaultMaxNights      int   `envconfig:"DEFAULT_MAX_NIGHTS"       default:"365"`
		DefaultAdvanceDays    int   `envconfig:"DEFAULT_ADVANCE_DAYS"     default:"365"`
	} `envconfig:"BOOKING"`

	Escrow struct {
		AutoRelease       bool   `envconfig:"AUTO_RELEASE"        default:"true"`
		ReleaseTrigger    string `envconfig:"RELEASE_TRIGGER"     default:"check_out"`
		RefundPolicyFile  string `envconfig:"REFUND_POLICY_FILE"`
		ReceiptsDirectory string `envconfig:"RECEIPTS_DIRECTORY"  default:"receipts"`
	} `envconfig:"ESCROW"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Region          string `envconfig:"REGION"            default:"auto"`
		} `envconfig:"S3"`
		Listing struct {
			BaseURL        string        `envconfig:"BASE_URL"`
			Timeout        time.Duration `envconfig:"TIMEOUT"         default:"5s"`
			CacheTTLSecond int           `envconfig:"CACHE_TTL_SECOND" default:"60"`
		} `envconfig:"LISTING"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
