package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"re_deals/internal/transport/bot/view"
	"re_deals/pkg/logx"
)

func (h *Handler) OnPublishedCallback(ctx *th.Context, query telego.CallbackQuery) error {
	page := view.ParsePageCallback(query.Data)

	deals, hasNext, err := h.publishedPage(ctx, page)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.CallbackError).WithShowAlert())
		return err
	}

	if query.Message != nil && len(deals) > 0 {
		_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        view.PublishedPage(deals, page, h.currency),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: view.PaginationKeyboard(page, hasNext),
		})
		// Telegram отвечает ошибкой, если текст не изменился
		if err != nil {
			logger(ctx).Debug("EditMessageText", logx.Error(err))
		}
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

// OnNoop кнопка с номером страницы.
func (h *Handler) OnNoop(ctx *th.Context, query telego.CallbackQuery) error {
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
