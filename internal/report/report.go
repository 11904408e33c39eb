// Package report строит markdown отчёты по расчёту сделки для терминала.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v2"

	"re_deals/internal/dealform"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/amortization"
	"re_deals/internal/domain/service/proforma"
	"re_deals/pkg/rest"
)

// LoadInputs читает сделку в YAML, поля как в REST форме.
func LoadInputs(r io.Reader) (entity.DealInputs, error) {
	var form rest.DealInputs

	if err := yaml.NewDecoder(r).Decode(&form); err != nil {
		return entity.DealInputs{}, fmt.Errorf("yaml.Decode: %w", err)
	}

	if err := dealform.Validate(form); err != nil {
		return entity.DealInputs{}, fmt.Errorf("dealform.Validate: %w", err)
	}

	in, err := dealform.ToDomain(form)
	if err != nil {
		return entity.DealInputs{}, fmt.Errorf("dealform.ToDomain: %w", err)
	}

	return in, nil
}

// Projection таблица по годам.
func Projection(analysis entity.Analysis, currency string) string {
	if !analysis.Computable {
		return notComputable
	}

	var sb strings.Builder

	sb.WriteString("# Pro-forma\n\n")
	sb.WriteString("| Year | GPR | Vacancy | EGI | OpEx | NOI | Debt service | Cash flow | Value | Loan | Equity |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")

	for _, y := range analysis.Projection {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			y.Year,
			Money(y.GrossPotentialRent, currency),
			Money(y.VacancyLoss, currency),
			Money(y.EffectiveGrossIncome, currency),
			Money(y.OperatingExpenses, currency),
			Money(y.NOI, currency),
			Money(y.DebtService, currency),
			Money(y.CashFlowBeforeTax, currency),
			Money(y.PropertyValue, currency),
			Money(y.LoanBalance, currency),
			Money(y.Equity, currency),
		)
	}

	return sb.String()
}

// Summary показатели первого года и выхода.
func Summary(in entity.DealInputs, analysis entity.Analysis, currency string) string {
	if !analysis.Computable {
		return notComputable
	}

	m := analysis.Metrics

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s deal\n\n", in.Kind())
	sb.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Purchase price | %s |\n", Money(in.PurchasePrice, currency))
	fmt.Fprintf(&sb, "| Total cash invested | %s |\n", Money(m.TotalCashInvested, currency))
	fmt.Fprintf(&sb, "| NOI (year 1) | %s |\n", Money(m.NOI, currency))
	fmt.Fprintf(&sb, "| Monthly cash flow | %s |\n", Money(m.MonthlyCashFlow, currency))
	fmt.Fprintf(&sb, "| Cap rate | %.2f%% |\n", m.CapRatePct)
	fmt.Fprintf(&sb, "| Cash-on-cash | %.2f%% |\n", m.CoCReturnPct)

	if m.Exit != nil {
		sb.WriteString("\n## Exit\n\n| Metric | Value |\n|---|---:|\n")
		fmt.Fprintf(&sb, "| Holding period | %d years |\n", m.Exit.HoldingPeriodYears)
		fmt.Fprintf(&sb, "| Sale price | %s |\n", Money(m.Exit.SalePrice, currency))
		fmt.Fprintf(&sb, "| Net sale proceeds | %s |\n", Money(m.Exit.NetSaleProceeds, currency))
		fmt.Fprintf(&sb, "| Equity multiple | %.2fx |\n", m.Exit.EquityMultiple)
		fmt.Fprintf(&sb, "| Unlevered IRR | %s |\n", Percent(m.Exit.UnleveredIRRPct))
	}

	return sb.String()
}

// Schedule график погашения кредита по годам на весь срок.
func Schedule(in entity.DealInputs, currency string) string {
	schedule := amortization.Schedule(proforma.LoanAmount(in), in.InterestRatePct, in.LoanTermYears)
	if len(schedule) == 0 {
		return "# No loan\n\nNothing to amortize: the deal has no loan or no loan term.\n"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Loan schedule\n\n%s at %.2f%% for %d years\n\n",
		Money(proforma.LoanAmount(in), currency), in.InterestRatePct, in.LoanTermYears)
	sb.WriteString("| Year | Starting balance | Interest | Principal | Ending balance |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|\n")

	for _, y := range schedule {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n",
			y.Year,
			Money(y.StartingBalance, currency),
			Money(y.InterestPaid, currency),
			Money(y.PrincipalPaid, currency),
			Money(amortization.Floor(y.EndingBalance), currency),
		)
	}

	return sb.String()
}

// Grid строки по первой переменной, столбцы по второй.
func Grid(grid entity.SensitivityGrid) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s: %s × %s\n\n", grid.Metric, grid.VariableA, grid.VariableB)

	fmt.Fprintf(&sb, "| %s \\ %s |", grid.VariableA, grid.VariableB)

	for _, b := range grid.RangeB {
		fmt.Fprintf(&sb, " %s |", number(b))
	}

	sb.WriteString("\n|---|" + strings.Repeat("---:|", len(grid.RangeB)) + "\n")

	for i, row := range grid.Rows {
		fmt.Fprintf(&sb, "| **%s** |", number(grid.RangeA[i]))

		for _, cell := range row {
			fmt.Fprintf(&sb, " %s |", cellValue(cell.Value))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

const notComputable = "# Not enough data\n\nSet purchase price, loan term and deal kind to run the projection.\n"

func Money(amount float64, currency string) string {
	return money.NewFromFloat(amount, currency).Display()
}

func Percent(pct *float64) string {
	if pct == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.2f%%", *pct)
}

func cellValue(v *float64) string {
	if v == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.2f", *v)
}

func number(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%.2f", v)
}
