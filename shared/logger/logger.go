package logger

import (
	"io"
	"os"
	"spa/config"
	"spa/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable lines in development and JSON everywhere else,
// tagging every entry with the application name.
func InitLogger(cfg *config.Config) {
	InitLoggerTo(cfg, os.Stdout)
}

func InitLoggerTo(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if cfg.Server.Env == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != constant.Empty {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	log.Logger = ctx.Logger()
	log.Trace().Str("env", cfg.Server.Env).Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel falls back to info when SERVER_LOG_LEVEL is missing or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = zerolog.InfoLevel
		log.Info().Str("loglevel", level.String()).Msg("No valid log level configured, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
