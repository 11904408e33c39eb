package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"re_deals/internal/transport/bot/middleware"
	"re_deals/internal/transport/bot/view"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats ...int64) {
	bh.Use(middleware.AllowedChats(allowedChats...))

	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnPublished, th.CommandEqual("published"))
	bh.HandleMessage(h.OnDeal, th.CommandEqual("deal"))

	bh.HandleCallbackQuery(h.OnPublishedCallback, th.CallbackDataPrefix(view.PublishedPagePrefix))
	bh.HandleCallbackQuery(h.OnNoop, th.CallbackDataEqual(view.NoopCallback))
}
