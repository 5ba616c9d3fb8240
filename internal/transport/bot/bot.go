package bot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"bargain/internal/config"
	"bargain/internal/transport/bot/handler"
	"bargain/pkg/contextx"
	"bargain/pkg/logx"
)

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
	masker = logx.NewSensitiveDataMasker()       //nolint:gochecknoglobals
)

// Bot принимает цены от пользователей Telegram и отвечает таблицей предложений.
type Bot struct {
	bot            *telego.Bot
	handler        *handler.Handler
	pollingTimeout time.Duration
}

// New creates the bot. Bot API calls go through transport, which should allow
// requests longer than the polling timeout.
func New(cfg config.Bot, h *handler.Handler, transport http.RoundTripper) (*Bot, error) {
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.PollingTimeout + 10*time.Second, //nolint:mnd
	}

	bot, err := telego.NewBot(
		cfg.Token,
		telego.WithHTTPClient(httpClient),
		telego.WithDiscardLogger(),
	)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", logx.MaskError(masker, err))
	}

	return &Bot{
		bot:            bot,
		handler:        h,
		pollingTimeout: cfg.PollingTimeout,
	}, nil
}

// Run polls updates until ctx is done. Returned errors never contain the bot
// token.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: int(b.pollingTimeout.Seconds()),
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", logx.MaskError(masker, err))
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", logx.MaskError(masker, err))
	}

	b.handler.RegisterRoutes(botHandler)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(logx.MaskError(masker, err)))
		}
	}()

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(logx.MaskError(masker, err)))
	}

	return ctx.Err()
}
