package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"bargain/internal/config"
	service "bargain/internal/domain/service/bargain"
	"bargain/internal/domain/value"
	"bargain/internal/infrastructure/metrics"
	"bargain/internal/server"
	"bargain/internal/transport/bot"
	"bargain/internal/transport/bot/handler"
	"bargain/pkg/application/modules"
	"bargain/pkg/contextx"
	"bargain/pkg/httpx"
	"bargain/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewCalculator builds and validates the calculator from configuration.
func NewCalculator(cfg config.Calculator) (*service.Calculator, error) {
	calculator := service.NewCalculator().
		WithFeeRate(cfg.FeeRate).
		WithTargetProfits(cfg.TargetProfits...).
		WithThresholds(value.Thresholds{
			High:   cfg.HighThreshold,
			Medium: cfg.MediumThreshold,
		})

	if err := calculator.Validate(); err != nil {
		return nil, fmt.Errorf("calculator.Validate: %w", err)
	}

	return calculator, nil
}

func Run(ctx context.Context, cfg config.Config) error {
	// 1. Calculator
	calculator, err := NewCalculator(cfg.Calculator)
	if err != nil {
		return err
	}

	logger(ctx).Info("calculator configured",
		slog.Float64("fee-rate", calculator.FeeRate()),
		slog.Any("target-profits", calculator.TargetProfits()),
	)

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewRecorder: %w", err)
	}

	// 3. Servers
	var ready atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         ready.Load,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	//nolint:exhaustruct
	httpServer := &http.Server{
		Addr: cfg.HTTP.ListenAddress,
		Handler: server.NewHandler(
			server.NewServer(server.NewBargainServer(calculator, recorder)),
			cfg.HTTP.LogFieldMaxLen,
		),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnShutdown: func() {
			ready.Store(false)
			logger(ctx).Info("application stopping...")
		},
	}.Run(ctx, g, httpServer)

	// 4. Telegram bot
	if cfg.Bot.Enabled() {
		transport := httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
			httpx.WithLogLevel(slog.LevelDebug),
		)

		tgBot, err := bot.New(cfg.Bot, handler.New(calculator, recorder), transport)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		modules.Worker{Name: "telegramBot"}.Run(ctx, g, tgBot.Run)
	} else {
		logger(ctx).Info("telegram bot disabled, BOT_TOKEN is empty")
	}

	ready.Store(true)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
