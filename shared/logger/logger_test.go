package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpay/config"
	"rentpay/shared/constant"
	"rentpay/shared/logger"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("settlement unreachable"))

	assert.Contains(t, buf.String(), "settlement unreachable")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.TraceLevel},
		{level: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestConfigureOutput(t *testing.T) {
	t.Run("production writes JSON tagged with the app", func(t *testing.T) {
		restore(t)

		var buf bytes.Buffer

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.App.Name = "rentpay"

		logger.ConfigureOutput(cfg, &buf)
		log.Info().Str("booking_id", "booking-1").Msg("Booking confirmed.")

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "rentpay", entry["app"])
		assert.Equal(t, "booking-1", entry["booking_id"])
		assert.Equal(t, "Booking confirmed.", entry["message"])
	})

	t.Run("development writes console lines", func(t *testing.T) {
		restore(t)

		var buf bytes.Buffer

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvDevelopment

		logger.ConfigureOutput(cfg, &buf)
		log.Info().Str("transfer_reference", "0xfeed").Msg("Polling started.")

		assert.Contains(t, buf.String(), "Polling started.")
		assert.Contains(t, buf.String(), "transfer_reference=0xfeed")
		assert.False(t, json.Valid(buf.Bytes()))
	})
}
