package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/internal/domain/dealtest"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/service/sensitivity"
	"re_deals/internal/domain/value"
	"re_deals/internal/report"
)

const rentalYAML = `
kind: rental
purchasePrice: 250000
rehabCost: 10000
closingCostsPct: 3
downPayment: 50000
interestRatePct: 6.5
loanTermYears: 30
annualIncomeGrowthPct: 3
annualAppreciationPct: 3
grossMonthlyIncome: 2200
expenseRates:
  propertyTaxesPct: 1.2
  insurancePct: 0.5
  maintenancePct: 5
  vacancyPct: 5
  capExPct: 5
  managementFeePct: 8
  otherExpensesPct: 2
`

func TestLoadInputs(t *testing.T) {
	rq := require.New(t)

	in, err := report.LoadInputs(strings.NewReader(rentalYAML))
	rq.NoError(err)
	rq.Equal(dealtest.Rental(), in)

	_, err = report.LoadInputs(strings.NewReader("kind: castle\npurchasePrice: 1\n"))
	rq.Error(err)

	_, err = report.LoadInputs(strings.NewReader("kind: [rental"))
	rq.Error(err)
}

func TestSummary(t *testing.T) {
	rq := require.New(t)

	in := dealtest.RentalWithExit()
	md := report.Summary(in, returns.Analyze(in), "USD")

	rq.Contains(md, "# rental deal")
	rq.Contains(md, "| Purchase price | $250,000.00 |")
	rq.Contains(md, "| Monthly cash flow | $237.85 |")
	rq.Contains(md, "| Unlevered IRR | 15.01% |")
	rq.Contains(md, "| Equity multiple | 1.92x |")
}

func TestProjection(t *testing.T) {
	rq := require.New(t)

	md := report.Projection(returns.Analyze(dealtest.Rental()), "USD")
	rq.Contains(md, "| 1 | $26,400.00 |")
	rq.Contains(md, "| 10 |")

	in := dealtest.Rental()
	in.LoanTermYears = 0
	rq.Contains(report.Projection(returns.Analyze(in), "USD"), "Not enough data")
}

func TestSchedule(t *testing.T) {
	rq := require.New(t)

	md := report.Schedule(dealtest.Rental(), "USD")
	rq.Contains(md, "$217,500.00 at 6.50% for 30 years")
	rq.Contains(md, "| 1 | $217,500.00 |")
	rq.Contains(md, "| $215,068.95 |")
	rq.Contains(md, "| 30 |")

	in := dealtest.Rental()
	in.InterestRatePct = 0
	rq.Contains(report.Schedule(in, "USD"), "| 1 | $217,500.00 | $0.00 | $217,500.00 | $0.00 |")

	in.LoanTermYears = 0
	rq.Contains(report.Schedule(in, "USD"), "# No loan")
}

func TestGrid(t *testing.T) {
	rq := require.New(t)

	grid, err := sensitivity.Build(dealtest.Rental(),
		value.SweepPurchasePrice, value.SweepInterestRatePct, value.MetricIRR)
	rq.NoError(err)

	md := report.Grid(grid)
	rq.Contains(md, "# irr: purchasePrice × interestRatePct")
	rq.Contains(md, "| **250000** |")
	rq.Contains(md, "N/A")
	rq.Len(strings.Split(strings.TrimSpace(md), "\n"), 2+2+len(grid.RangeA))
}
