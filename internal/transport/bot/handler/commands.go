package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"re_deals/internal/transport/bot/view"
	"re_deals/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnPublished(ctx *th.Context, msg telego.Message) error {
	deals, hasNext, err := h.publishedPage(ctx, 1)
	if err != nil {
		logger(ctx).Error("publishedPage", logx.Error(err))
		return h.send(ctx, msg.Chat.ID, view.PublishedError)
	}

	if len(deals) == 0 {
		return h.send(ctx, msg.Chat.ID, view.PublishedEmpty)
	}

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        view.PublishedPage(deals, 1, h.currency),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: view.PaginationKeyboard(1, hasNext),
	})

	return err
}

func (h *Handler) OnDeal(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 { //nolint:mnd
		return h.send(ctx, msg.Chat.ID, view.DealMissingArgument)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.dealCard(ctx, parts[1]))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
