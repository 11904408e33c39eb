package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/Rhymond/go-money"

	"re_deals/internal/domain/entity"
)

const (
	StartMessage = `👋 <b>Каталог сделок с недвижимостью</b>

/published - опубликованные сделки
/deal &lt;id&gt; - карточка сделки с расчётом`

	DealMissingArgument = "Укажите ID сделки: /deal <id>"
	DealInvalidID       = "❌ Неверный ID сделки"
	DealNotFound        = "🔍 Сделка не найдена или не опубликована"
	PublishedEmpty      = "Опубликованных сделок пока нет"
	PublishedError      = "❌ Не удалось получить список сделок"
	CallbackError       = "❌ Ошибка получения данных"

	PublishedPagePrefix = "published_page"
	NoopCallback        = "noop"
)

func Money(amount float64, currency string) string {
	return money.NewFromFloat(amount, currency).Display()
}

// PublishedPage страница каталога, нумерация с 1.
func PublishedPage(deals []entity.Deal, page int, currency string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📚 <b>Опубликованные сделки</b> (стр. %d)\n\n", page)

	for _, deal := range deals {
		fmt.Fprintf(&sb, "🏠 <b>%s</b> (%s)\n%s, CoC %.2f%%\n<code>/deal %s</code>\n\n",
			html.EscapeString(deal.Title),
			deal.Inputs.Kind(),
			Money(deal.Inputs.PurchasePrice, currency),
			deal.Snapshot.CoCReturnPct,
			deal.ID,
		)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// DealCard карточка сделки: показатели и первые годы проекции.
func DealCard(deal entity.Deal, analysis entity.Analysis, currency string, years int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏠 <b>%s</b> (%s)\n\n", html.EscapeString(deal.Title), deal.Inputs.Kind())
	fmt.Fprintf(&sb, "💰 Цена: %s\n", Money(deal.Inputs.PurchasePrice, currency))

	if !analysis.Computable {
		sb.WriteString("\n⏳ Недостаточно данных для расчёта")
		return sb.String()
	}

	m := analysis.Metrics

	fmt.Fprintf(&sb, "💵 Вложено: %s\n", Money(m.TotalCashInvested, currency))
	fmt.Fprintf(&sb, "📅 Денежный поток: %s / мес\n", Money(m.MonthlyCashFlow, currency))
	fmt.Fprintf(&sb, "📊 Cap rate: %.2f%%, CoC: %.2f%%\n", m.CapRatePct, m.CoCReturnPct)

	if m.Exit != nil {
		fmt.Fprintf(&sb, "🚪 Выход через %d г.: IRR %s, EM %.2fx\n",
			m.Exit.HoldingPeriodYears, IRR(m.Exit.UnleveredIRRPct), m.Exit.EquityMultiple)
	}

	sb.WriteString("\n<pre>")
	fmt.Fprintf(&sb, "%-4s %12s %12s\n", "Год", "NOI", "CF")

	for _, y := range analysis.Projection[:min(years, len(analysis.Projection))] {
		fmt.Fprintf(&sb, "%-4d %12.0f %12.0f\n", y.Year, y.NOI, y.CashFlowBeforeTax)
	}

	sb.WriteString("</pre>")

	return sb.String()
}

// IRR N/A, если ставка не определена.
func IRR(pct *float64) string {
	if pct == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.2f%%", *pct)
}

// PageCallback данные кнопки перехода на страницу.
func PageCallback(page int) string {
	return fmt.Sprintf("%s:%d", PublishedPagePrefix, page)
}

// ParsePageCallback невалидные данные означают первую страницу.
func ParsePageCallback(data string) int {
	var page int

	if _, err := fmt.Sscanf(data, PublishedPagePrefix+":%d", &page); err != nil || page < 1 {
		return 1
	}

	return page
}
