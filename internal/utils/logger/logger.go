// Package logger provides a global logger for the application
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Flags carries the level overrides parsed by the command line.
type Flags struct {
	Debug bool
	Trace bool
	Info  bool
}

// Level resolves the log level for an environment name, with flags taking
// precedence over the environment.
func Level(environment string, flags Flags) zerolog.Level {
	var logLevel zerolog.Level
	switch strings.ToLower(environment) {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	if flags.Debug {
		logLevel = zerolog.DebugLevel
	} else if flags.Trace {
		logLevel = zerolog.TraceLevel
	} else if flags.Info {
		logLevel = zerolog.InfoLevel
	}
	return logLevel
}

func initLogger(flags Flags) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	switch environment {
	case "dev", "test", "prod":
	default:
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	logLevel := Level(environment, flags)
	zerolog.SetGlobalLevel(logLevel)

	log.Debug().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialised")
}

// Init initializes the logger with the configuration from the environment
// and the level flags parsed by the command.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init(logger.Flags{Debug: debug}) <- inside the command's PreRun
//
// Then, `go run ./cmd/validator --epoch 2025-01 --debug`
func Init(flags Flags) {
	initLogger(flags)
}
