package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"html"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"re_deals/internal/domain/entity"
	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// TelegramBot пишет в канал о новых опубликованных сделках.
type TelegramBot struct {
	bot      *telego.Bot
	chatID   int64
	currency string
	baseURL  string
}

func NewTelegramBot(
	token string,
	chatID int64,
	currency, baseURL string,
	opts ...telego.BotOption,
) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:      bot,
		chatID:   chatID,
		currency: currency,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (b *TelegramBot) DealPublished(ctx context.Context, deal entity.Deal) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		PublishedMessage(deal, b.currency, b.baseURL),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	logger(ctx).Debug("deal announced", logx.DealID(deal.ID), slog.Int64(logx.FieldChatID, b.chatID))

	return nil
}

// PublishedMessage HTML текст объявления о сделке.
func PublishedMessage(deal entity.Deal, currency, baseURL string) string {
	m := deal.Snapshot

	var sb strings.Builder

	fmt.Fprintf(&sb, "🏠 <b>%s</b> (%s)\n\n", html.EscapeString(deal.Title), deal.Inputs.Kind())
	fmt.Fprintf(&sb, "💰 <b>Price:</b> %s\n", display(deal.Inputs.PurchasePrice, currency))
	fmt.Fprintf(&sb, "💵 <b>Cash invested:</b> %s\n", display(m.TotalCashInvested, currency))
	fmt.Fprintf(&sb, "📅 <b>Cash flow:</b> %s / mo\n", display(m.MonthlyCashFlow, currency))
	fmt.Fprintf(&sb, "📊 <b>Cap rate:</b> %.2f%%\n", m.CapRatePct)
	fmt.Fprintf(&sb, "📈 <b>CoC:</b> %.2f%%\n", m.CoCReturnPct)

	if m.Exit != nil {
		irr := "N/A"
		if m.Exit.UnleveredIRRPct != nil {
			irr = fmt.Sprintf("%.2f%%", *m.Exit.UnleveredIRRPct)
		}

		fmt.Fprintf(&sb, "🚪 <b>Exit in %d y:</b> IRR %s, EM %.2fx\n",
			m.Exit.HoldingPeriodYears, irr, m.Exit.EquityMultiple)
	}

	if baseURL != "" {
		fmt.Fprintf(&sb, "\n🔗 <a href=\"%s/v1/deals/%s\">Open deal</a>", baseURL, deal.ID)
	}

	return sb.String()
}

func display(amount float64, currency string) string {
	return money.NewFromFloat(amount, currency).Display()
}

// Nop используется, когда бот не настроен.
type Nop struct{}

func (Nop) DealPublished(ctx context.Context, deal entity.Deal) error {
	logger(ctx).Debug("notifier disabled, skip announcement", logx.DealID(deal.ID))
	return nil
}
