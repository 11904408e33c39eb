package returns

import "math"

const (
	irrInitialGuess   = 0.10
	irrMaxIterations  = 100
	irrTolerance      = 1e-6
	irrDerivativeZero = 1e-10
)

type irrOptions struct {
	guess         float64
	maxIterations int
	tolerance     float64
}

type IRROption func(*irrOptions)

func WithInitialGuess(guess float64) IRROption {
	return func(o *irrOptions) {
		o.guess = guess
	}
}

func WithMaxIterations(n int) IRROption {
	return func(o *irrOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func WithTolerance(tolerance float64) IRROption {
	return func(o *irrOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// IRR ставка r, при которой Σ CF_t / (1+r)^t = 0, решается методом Ньютона.
//
//	f(r)  = Σ CF_t / (1+r)^t
//	f'(r) = Σ -t * CF_t / (1+r)^(t+1)
//
// Возвращает десятичную ставку (0.1 = 10%). ok == false, если итерации не сошлись,
// производная вырождена или ставка ушла за -100%: такой IRR не определён.
func IRR(cashFlows []float64, opts ...IRROption) (rate float64, ok bool) {
	o := irrOptions{
		guess:         irrInitialGuess,
		maxIterations: irrMaxIterations,
		tolerance:     irrTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(cashFlows) < 2 {
		return 0, false
	}

	r := o.guess

	for range o.maxIterations {
		npv, derivative := npvAndDerivative(cashFlows, r)

		if math.Abs(derivative) < irrDerivativeZero || math.IsNaN(derivative) {
			return 0, false
		}

		next := r - npv/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return 0, false
		}

		if math.Abs(next-r) < o.tolerance {
			return next, true
		}

		r = next
	}

	return 0, false
}

// NPV чистая приведённая стоимость потока при ставке r, CF_0 не дисконтируется.
func NPV(cashFlows []float64, r float64) float64 {
	npv, _ := npvAndDerivative(cashFlows, r)
	return npv
}

func npvAndDerivative(cashFlows []float64, r float64) (float64, float64) {
	var npv, derivative float64

	for t, cf := range cashFlows {
		discount := math.Pow(1+r, float64(t))
		npv += cf / discount
		derivative -= float64(t) * cf / (discount * (1 + r))
	}

	return npv, derivative
}
