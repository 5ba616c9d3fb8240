package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	HTTP       HTTP
	Calculator Calculator
	Bot        Bot
}

type App struct {
	Name      string     `env:"APP_NAME" envDefault:"bargain"`
	Version   string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Bot is optional: the Telegram bot starts only when the token is set.
type Bot struct {
	Token          string        `env:"BOT_TOKEN" json:"-"`
	PollingTimeout time.Duration `env:"BOT_POLLING_TIMEOUT" envDefault:"60s"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
