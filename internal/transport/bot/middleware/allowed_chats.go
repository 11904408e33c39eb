package middleware

import (
	"slices"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowedChats пропускает обновления только из перечисленных чатов.
// Пустой список пропускает всё.
func AllowedChats(chatIDs ...int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if len(chatIDs) == 0 {
			return ctx.Next(update)
		}

		chatID, ok := UpdateChatID(update)
		if !ok || !slices.Contains(chatIDs, chatID) {
			return nil
		}

		return ctx.Next(update)
	}
}

func UpdateChatID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.GetChat().ID, true
	}

	return 0, false
}
