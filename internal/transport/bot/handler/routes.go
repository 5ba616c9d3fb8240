package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"bargain/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler) {
	bh.Use(middleware.Recovery, middleware.Logging)

	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnStart, th.CommandEqual("help"))
	bh.HandleMessage(h.OnBargain, th.CommandEqual("bargain"))

	// Неизвестные команды получают справку, любой другой текст считается ценой
	bh.HandleMessage(h.OnStart, th.AnyCommand())
	bh.HandleMessage(h.OnPrice, th.AnyMessageWithText())
}
