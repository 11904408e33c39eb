package value

import "fmt"

// SweepVariable входная переменная, которую перебирает сетка чувствительности.
type SweepVariable string

const (
	SweepPurchasePrice   SweepVariable = "purchasePrice"
	SweepDownPayment     SweepVariable = "downPayment"
	SweepVacancyPct      SweepVariable = "vacancyPct"
	SweepIncomeGrowthPct SweepVariable = "annualIncomeGrowthPct"
	SweepExitCapRatePct  SweepVariable = "exitCapRatePct"
	SweepInterestRatePct SweepVariable = "interestRatePct"
)

//nolint:gochecknoglobals
var sweepVariables = []SweepVariable{
	SweepPurchasePrice,
	SweepDownPayment,
	SweepVacancyPct,
	SweepIncomeGrowthPct,
	SweepExitCapRatePct,
	SweepInterestRatePct,
}

func SweepVariables() []SweepVariable {
	out := make([]SweepVariable, len(sweepVariables))
	copy(out, sweepVariables)
	return out
}

func ParseSweepVariable(s string) (SweepVariable, error) {
	for _, v := range sweepVariables {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("unknown sweep variable %q", s)
}

func (v SweepVariable) String() string {
	return string(v)
}

// Relative дельты этой переменной задаются долями от текущего значения.
func (v SweepVariable) Relative() bool {
	return v == SweepPurchasePrice || v == SweepDownPayment
}

// Metric выходной показатель ячейки сетки.
type Metric string

const (
	MetricIRR             Metric = "irr"
	MetricEquityMultiple  Metric = "equityMultiple"
	MetricCoCReturn       Metric = "cocReturn"
	MetricMonthlyCashFlow Metric = "monthlyCashFlow"
	MetricCapRate         Metric = "capRate"
	MetricNOI             Metric = "noi"
)

//nolint:gochecknoglobals
var metrics = []Metric{
	MetricIRR,
	MetricEquityMultiple,
	MetricCoCReturn,
	MetricMonthlyCashFlow,
	MetricCapRate,
	MetricNOI,
}

func ParseMetric(s string) (Metric, error) {
	for _, m := range metrics {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("unknown metric %q", s)
}

func (m Metric) String() string {
	return string(m)
}

// NeedsExit метрике нужен сценарий продажи.
func (m Metric) NeedsExit() bool {
	return m == MetricIRR || m == MetricEquityMultiple
}
