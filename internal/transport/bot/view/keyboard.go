package view

import (
	"strconv"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// PaginationKeyboard hasNext известен по лишней записи в выборке.
func PaginationKeyboard(page int, hasNext bool) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").WithCallbackData(PageCallback(page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(strconv.Itoa(page)).WithCallbackData(NoopCallback))

	if hasNext {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").WithCallbackData(PageCallback(page+1)))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}
