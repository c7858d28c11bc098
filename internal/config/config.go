package config

import (
	"fmt"
	"os"
	"time"

	"eloget/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	HTTPTimeout     time.Duration
	UserAgent       string
	ChessComBaseURL string
	LichessBaseURL  string

	// flag defaults, overridden per invocation by -usr, -fmt and -src
	DefaultUser   string
	DefaultFormat string
	DefaultSource string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	timeout, err := time.ParseDuration(getEnv("ELOGET_HTTP_TIMEOUT", constants.ExternalAPITimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid ELOGET_HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("ELOGET_HTTP_TIMEOUT must be positive, got %s", timeout)
	}

	cfg := &Config{
		HTTPTimeout:     timeout,
		UserAgent:       getEnv("ELOGET_USER_AGENT", constants.UserAgent),
		ChessComBaseURL: getEnv("ELOGET_CHESSCOM_BASE_URL", constants.ChessComBaseURL),
		LichessBaseURL:  getEnv("ELOGET_LICHESS_BASE_URL", constants.LichessBaseURL),
		DefaultUser:     getEnv("ELOGET_DEFAULT_USER", constants.DefaultUser),
		DefaultFormat:   getEnv("ELOGET_DEFAULT_FMT", constants.DefaultFormat),
		DefaultSource:   getEnv("ELOGET_DEFAULT_SRC", constants.DefaultSource),
	}

	logger.Debug().
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("chesscom_base_url", cfg.ChessComBaseURL).
		Str("lichess_base_url", cfg.LichessBaseURL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
