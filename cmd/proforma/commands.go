package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/proforma"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/service/sensitivity"
	"re_deals/internal/domain/value"
	"re_deals/internal/report"
)

var (
	dealFile = flag.String("f", "deal.yaml", "Path to the deal inputs file (YAML)")   //nolint:gochecknoglobals
	currency = flag.String("currency", "USD", "ISO 4217 code used to display amounts") //nolint:gochecknoglobals
	years    = flag.Int("years", proforma.DefaultYears, "Projection horizon in years") //nolint:gochecknoglobals
)

func loadInputs() (entity.DealInputs, error) {
	f, err := os.Open(*dealFile)
	if err != nil {
		return entity.DealInputs{}, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	return report.LoadInputs(f)
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}

	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}

	fmt.Print(out)
}

type projectCmd struct{}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the yearly pro-forma projection" }
func (*projectCmd) Usage() string {
	return `proforma [-f deal.yaml] project

  Displays income, expenses, debt service and equity for every projected year.
`
}

func (*projectCmd) SetFlags(*flag.FlagSet) {}

func (*projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(report.Projection(returns.Analyze(in, proforma.WithYears(*years)), *currency))

	return subcommands.ExitSuccess
}

type scheduleCmd struct{}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the yearly loan amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `proforma [-f deal.yaml] schedule

  Displays interest, principal and balance for every year of the loan term.
`
}

func (*scheduleCmd) SetFlags(*flag.FlagSet) {}

func (*scheduleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(report.Schedule(in, *currency))

	return subcommands.ExitSuccess
}

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display return metrics of the deal" }
func (*summaryCmd) Usage() string {
	return `proforma [-f deal.yaml] summary

  Displays cap rate, cash-on-cash, monthly cash flow and exit metrics.
  IRR is reported as N/A when it cannot be determined.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(report.Summary(in, returns.Analyze(in, proforma.WithYears(*years)), *currency))

	return subcommands.ExitSuccess
}

type gridCmd struct {
	varA        string
	varB        string
	metric      string
	concurrency int
}

func (*gridCmd) Name() string     { return "grid" }
func (*gridCmd) Synopsis() string { return "display a two-variable sensitivity grid" }
func (*gridCmd) Usage() string {
	return `proforma [-f deal.yaml] grid [-a <variable>] [-b <variable>] [-metric <metric>]

  Recomputes the metric for every combination of the two swept variables.
  Variables: purchasePrice, downPayment, vacancyPct, annualIncomeGrowthPct,
  exitCapRatePct, interestRatePct.
  Metrics: irr, equityMultiple, cocReturn, monthlyCashFlow, capRate, noi.
`
}

func (c *gridCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.varA, "a", value.SweepExitCapRatePct.String(), "Variable swept along rows")
	f.StringVar(&c.varB, "b", value.SweepInterestRatePct.String(), "Variable swept along columns")
	f.StringVar(&c.metric, "metric", value.MetricIRR.String(), "Metric computed in every cell")
	f.IntVar(&c.concurrency, "j", 4, "Cells computed in parallel") //nolint:mnd
}

func (c *gridCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	grid, err := sensitivity.Build(in,
		value.SweepVariable(c.varA),
		value.SweepVariable(c.varB),
		value.Metric(c.metric),
		sensitivity.WithConcurrency(c.concurrency),
		sensitivity.WithYears(*years),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(report.Grid(grid))

	return subcommands.ExitSuccess
}
