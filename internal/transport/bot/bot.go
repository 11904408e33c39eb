package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"re_deals/internal/transport/bot/handler"
	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
)

const pollTimeout = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot отвечает на команды в Telegram: каталог опубликованных сделок и карточка сделки.
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	chats   []int64
}

// New allowedChats пустой - бот отвечает во всех чатах.
func New(token string, h *handler.Handler, allowedChats ...int64) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &Bot{
		bot:     bot,
		handler: h,
		chats:   allowedChats,
	}, nil
}

// Run слушает обновления до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: pollTimeout,
	})
	if err != nil {
		return fmt.Errorf("get updates: %w", err)
	}

	bh, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("create bot handler: %w", err)
	}

	b.handler.RegisterRoutes(bh, b.chats...)

	go func() {
		<-ctx.Done()

		if err := bh.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started", "allowed_chats", len(b.chats))

	if err = bh.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
