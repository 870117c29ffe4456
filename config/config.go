package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"spa-room-assignment"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
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
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	// JWT signs the operator tokens accepted on the routes that change assignments.
	JWT struct {
		Secret    string `envconfig:"SECRET"`
		ExpireMin int    `envconfig:"EXPIRE_MIN" default:"720"`
	} `envconfig:"JWT"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY" default:"5"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	// Provider is the third-party booking system appointments are read from.
	Provider struct {
		AccessToken         string   `envconfig:"ACCESS_TOKEN"`
		LocationID          string   `envconfig:"LOCATION_ID"`
		Environment         string   `envconfig:"ENVIRONMENT" default:"sandbox"`
		BaseURL             string   `envconfig:"BASE_URL"`
		APIVersion          string   `envconfig:"API_VERSION" default:"2024-10-17"`
		CouplePattern       string   `envconfig:"COUPLE_PATTERN" default:"couple"`
		CoupleServiceID     string   `envconfig:"COUPLE_SERVICE_ID"`
		AllowedTherapists   []string `envconfig:"ALLOWED_THERAPISTS"`
		TimeoutSeconds      int      `envconfig:"TIMEOUT_SECONDS" default:"30"`
		RetryCount          int      `envconfig:"RETRY_COUNT" default:"3"`
		RetryWaitTimeMillis int      `envconfig:"RETRY_WAIT_TIME_MILLIS" default:"500"`
		WebhookSecret       string   `envconfig:"WEBHOOK_SECRET"`
	} `envconfig:"PROVIDER"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"assignment.changed"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	Assignment struct {
		LockTTLSeconds  int `envconfig:"LOCK_TTL_SECONDS" default:"30"`
		LockWaitSeconds int `envconfig:"LOCK_WAIT_SECONDS" default:"10"`
	} `envconfig:"ASSIGNMENT"`

	Scheduler struct {
		Enable    bool   `envconfig:"ENABLE" default:"true"`
		Spec      string `envconfig:"SPEC" default:"@every 5m"`
		DaysAhead int    `envconfig:"DAYS_AHEAD"`
	} `envconfig:"SCHEDULER"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

var (
	conf Config
	once sync.Once
)

// Load reads the optional .env file into the environment, then the environment into a Config.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}

		log.Debug().Str("file", envFile).Msg("No env file, reading the process environment only")
	}

	cfg := Config{}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &cfg, nil
}

// Get loads the configuration once per process. A malformed environment is fatal.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load(".env")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		conf = *cfg

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
	})

	return &conf
}
