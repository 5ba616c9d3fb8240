package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"bargain/pkg/contextx"
	"bargain/pkg/logx"
)

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
	masker = logx.NewSensitiveDataMasker()       //nolint:gochecknoglobals
)

// Recovery turns a panic in an update handler into an error so that the
// update loop keeps running.
func Recovery(ctx *th.Context, update telego.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"panic in bot handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	return ctx.Next(update)
}

// Logging logs every handled message with its chat and duration. A failed
// update is logged and returned with the bot token masked.
func Logging(ctx *th.Context, update telego.Update) error {
	start := time.Now()
	err := ctx.Next(update)

	return logUpdate(ctx, update, time.Since(start), err)
}

func logUpdate(ctx context.Context, update telego.Update, duration time.Duration, err error) error {
	attrs := []any{
		slog.Int64(logx.FieldDurationMs, duration.Milliseconds()),
	}

	if update.Message != nil {
		attrs = append(attrs,
			slog.Int64(logx.FieldChatID, update.Message.Chat.ID),
			slog.String(logx.FieldCommand, commandOf(update.Message.Text)),
		)
	}

	if err != nil {
		err = logx.MaskError(masker, err)
		logger(ctx).Error("bot update failed", append(attrs, logx.Error(err))...)

		return err
	}

	logger(ctx).Info("bot update handled", attrs...)

	return nil
}

func commandOf(text string) string {
	if len(text) == 0 || text[0] != '/' {
		return ""
	}

	for i, r := range text {
		if r == ' ' || r == '\n' || r == '@' {
			return text[:i]
		}
	}

	return text
}
