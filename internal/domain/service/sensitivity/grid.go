// Package sensitivity пересчитывает показатели сделки на декартовом
// произведении возмущений двух входных переменных.
package sensitivity

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/proforma"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/value"
)

var (
	ErrUnknownVariable = errors.New("unknown sweep variable")
	ErrUnknownMetric   = errors.New("unknown metric")
	ErrSameVariable    = errors.New("sweep variables must differ")
	ErrEmptyDeltas     = errors.New("deltas must not be empty")
	ErrNoExit          = errors.New("exit cap rate sweep requires an exit scenario")
)

//nolint:gochecknoglobals
var defaultDeltas = map[value.SweepVariable][]float64{
	value.SweepPurchasePrice:   {-0.10, -0.05, 0, 0.05, 0.10},
	value.SweepDownPayment:     {-0.10, -0.05, 0, 0.05, 0.10},
	value.SweepVacancyPct:      {-2, -1, 0, 1, 2},
	value.SweepIncomeGrowthPct: {-1, -0.5, 0, 0.5, 1},
	value.SweepExitCapRatePct:  {-0.5, -0.25, 0, 0.25, 0.5},
	value.SweepInterestRatePct: {-1, -0.5, 0, 0.5, 1},
}

// DefaultDeltas копия стандартных возмущений переменной.
func DefaultDeltas(v value.SweepVariable) []float64 {
	deltas, ok := defaultDeltas[v]
	if !ok {
		return nil
	}

	out := make([]float64, len(deltas))
	copy(out, deltas)
	return out
}

type options struct {
	deltas      map[value.SweepVariable][]float64
	concurrency int
	years       int
}

type Option func(*options)

// WithDeltas заменяет возмущения переменной, так строится сетка N×M.
func WithDeltas(v value.SweepVariable, deltas ...float64) Option {
	return func(o *options) {
		o.deltas[v] = deltas
	}
}

// WithConcurrency считает ячейки параллельно, не больше n одновременно.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func WithYears(years int) Option {
	return func(o *options) {
		o.years = years
	}
}

// Current текущее значение переменной во входных данных.
func Current(in entity.DealInputs, v value.SweepVariable) float64 {
	switch v {
	case value.SweepPurchasePrice:
		return in.PurchasePrice
	case value.SweepDownPayment:
		return in.DownPayment
	case value.SweepVacancyPct:
		return in.VacancyPct()
	case value.SweepIncomeGrowthPct:
		return in.Growth.IncomePct
	case value.SweepExitCapRatePct:
		if in.Exit == nil {
			return 0
		}
		return in.Exit.ExitCapRatePct
	case value.SweepInterestRatePct:
		return in.InterestRatePct
	}

	return 0
}

// Apply копия входных данных с новым значением переменной.
func Apply(in entity.DealInputs, v value.SweepVariable, x float64) entity.DealInputs {
	switch v {
	case value.SweepPurchasePrice:
		in.PurchasePrice = x
	case value.SweepDownPayment:
		in.DownPayment = x
	case value.SweepVacancyPct:
		in = in.WithVacancyPct(x)
	case value.SweepIncomeGrowthPct:
		in.Growth.IncomePct = x
	case value.SweepExitCapRatePct:
		in = in.WithExit(func(e *entity.Exit) { e.ExitCapRatePct = x })
	case value.SweepInterestRatePct:
		in.InterestRatePct = x
	}

	return in
}

// Range значения переменной вокруг текущего: доли для цены и взноса,
// пункты для ставок. Ставки вакансии, капитализации и процента не уходят ниже нуля.
func Range(in entity.DealInputs, v value.SweepVariable, deltas []float64) []float64 {
	current := Current(in, v)
	out := make([]float64, len(deltas))

	for i, d := range deltas {
		x := current + d
		if v.Relative() {
			x = current * (1 + d)
		}

		if v != value.SweepIncomeGrowthPct {
			x = math.Max(x, 0)
		}

		out[i] = x
	}

	return out
}

// Build сетка varA × varB. Ошибка возвращается только при неверных аргументах;
// неопределённые значения метрики хранятся как nil.
func Build(
	in entity.DealInputs,
	varA, varB value.SweepVariable,
	metric value.Metric,
	opts ...Option,
) (entity.SensitivityGrid, error) {
	o := options{
		deltas:      make(map[value.SweepVariable][]float64),
		concurrency: 1,
		years:       proforma.DefaultYears,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(in, varA, varB, metric); err != nil {
		return entity.SensitivityGrid{}, err
	}

	deltasA, err := o.deltasFor(varA)
	if err != nil {
		return entity.SensitivityGrid{}, err
	}

	deltasB, err := o.deltasFor(varB)
	if err != nil {
		return entity.SensitivityGrid{}, err
	}

	grid := entity.SensitivityGrid{
		VariableA: varA,
		VariableB: varB,
		Metric:    metric,
		RangeA:    Range(in, varA, deltasA),
		RangeB:    Range(in, varB, deltasB),
	}

	grid.Rows = make([][]entity.SensitivityCell, len(grid.RangeA))
	for i := range grid.Rows {
		grid.Rows[i] = make([]entity.SensitivityCell, len(grid.RangeB))
	}

	cell := func(i, j int) {
		a, b := grid.RangeA[i], grid.RangeB[j]
		cellInputs := Apply(Apply(in, varA, a), varB, b)
		analysis := returns.Analyze(cellInputs, proforma.WithYears(o.years))

		grid.Rows[i][j] = entity.SensitivityCell{
			A:     a,
			B:     b,
			Value: Extract(analysis, metric),
		}
	}

	if o.concurrency <= 1 {
		for i := range grid.RangeA {
			for j := range grid.RangeB {
				cell(i, j)
			}
		}

		return grid, nil
	}

	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i := range grid.RangeA {
		for j := range grid.RangeB {
			g.Go(func() error {
				cell(i, j)
				return nil
			})
		}
	}

	_ = g.Wait()

	return grid, nil
}

// Extract значение метрики; nil, если она не определена для этих данных.
func Extract(analysis entity.Analysis, metric value.Metric) *float64 {
	if !analysis.Computable {
		return nil
	}

	m := analysis.Metrics

	var v float64

	switch metric {
	case value.MetricIRR:
		if m.Exit == nil || m.Exit.UnleveredIRRPct == nil {
			return nil
		}
		v = *m.Exit.UnleveredIRRPct
	case value.MetricEquityMultiple:
		if m.Exit == nil {
			return nil
		}
		v = m.Exit.EquityMultiple
	case value.MetricCoCReturn:
		v = m.CoCReturnPct
	case value.MetricMonthlyCashFlow:
		v = m.MonthlyCashFlow
	case value.MetricCapRate:
		v = m.CapRatePct
	case value.MetricNOI:
		v = m.NOI
	default:
		return nil
	}

	return &v
}

func validate(in entity.DealInputs, varA, varB value.SweepVariable, metric value.Metric) error {
	for _, v := range []value.SweepVariable{varA, varB} {
		if _, err := value.ParseSweepVariable(v.String()); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}

		if v == value.SweepExitCapRatePct && in.Exit == nil {
			return ErrNoExit
		}
	}

	if varA == varB {
		return fmt.Errorf("%w: %q", ErrSameVariable, varA)
	}

	if _, err := value.ParseMetric(metric.String()); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	return nil
}

func (o options) deltasFor(v value.SweepVariable) ([]float64, error) {
	deltas, ok := o.deltas[v]
	if !ok {
		deltas = defaultDeltas[v]
	}

	if len(deltas) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyDeltas, v)
	}

	return deltas, nil
}
