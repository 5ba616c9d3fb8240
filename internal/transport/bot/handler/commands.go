package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
	"bargain/internal/infrastructure/metrics"
	"bargain/internal/transport/bot/view"
	"bargain/pkg/contextx"
	"bargain/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Start(entity.Table{FeeRate: h.calculator.FeeRate()}.FeePercent()))
}

// OnBargain отвечает таблицей на /bargain <price>
func (h *Handler) OnBargain(ctx *th.Context, msg telego.Message) error {
	args := strings.Fields(msg.Text)
	if len(args) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.BargainMissingArgument)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.answer(chatContext(ctx, msg), args[1]))
}

// OnPrice treats any plain text message as a price.
func (h *Handler) OnPrice(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.answer(chatContext(ctx, msg), msg.Text))
}

func (h *Handler) answer(ctx context.Context, input string) string {
	table := h.calculator.Table(input)
	h.recorder.ObserveTable(metrics.ChannelBot, table)

	logger(ctx).Debug(
		"table computed",
		slog.String(logx.FieldInputState, table.State.String()),
		slog.Int(logx.FieldRows, len(table.Rows)),
	)

	switch table.State {
	case value.InputReady:
		return view.Table(table, h.calculator.Thresholds())
	case value.InputEmpty:
		return view.BargainMissingArgument
	default:
		return view.InvalidPrice
	}
}

func chatContext(ctx context.Context, msg telego.Message) context.Context {
	chatID := contextx.ChatID(msg.Chat.ID)

	return contextx.WithLogger(
		contextx.WithChatID(ctx, chatID),
		logger(ctx).With(logx.Stringer(logx.FieldChatID, chatID)),
	)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}
