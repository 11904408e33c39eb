// Package amortization считает аннуитетный платёж и остаток кредита
// при ежемесячной капитализации.
package amortization

import "math"

const monthsPerYear = 12

// MonthlyRate номинальная годовая ставка в процентах -> месячная ставка.
func MonthlyRate(annualInterestRatePct float64) float64 {
	return annualInterestRatePct / 100 / monthsPerYear
}

// AnnualDebtService годовое обслуживание долга (месячный платёж * 12).
//
//	r   = rate / 100 / 12
//	n   = term * 12
//	pmt = L * r(1+r)^n / ((1+r)^n - 1)
//
// При нулевой ставке платёж линейный: L / n.
func AnnualDebtService(loanAmount, annualInterestRatePct float64, termYears int) float64 {
	n := termYears * monthsPerYear
	if n <= 0 || loanAmount <= 0 {
		return 0
	}

	r := MonthlyRate(annualInterestRatePct)
	if r == 0 {
		return loanAmount / float64(n) * monthsPerYear
	}

	growth := math.Pow(1+r, float64(n))
	monthlyPayment := loanAmount * (r * growth) / (growth - 1)

	return monthlyPayment * monthsPerYear
}

// AmortizeOneYear прогоняет 12 месячных шагов и возвращает остаток на конец года.
// Остаток не ограничивается нулём: это делает вызывающий код при показе.
// При нулевой ставке кредит считается погашенным за первый год.
func AmortizeOneYear(startingBalance, annualInterestRatePct, annualDebtService float64) float64 {
	r := MonthlyRate(annualInterestRatePct)
	if r == 0 {
		return 0
	}

	payment := annualDebtService / monthsPerYear
	balance := startingBalance

	for range monthsPerYear {
		interest := balance * r
		principal := payment - interest
		balance -= principal
	}

	return balance
}

// YearBalance остаток на конец года.
type YearBalance struct {
	Year            int
	StartingBalance float64
	InterestPaid    float64
	PrincipalPaid   float64
	EndingBalance   float64
}

// Schedule годовой график погашения на весь срок кредита.
func Schedule(loanAmount, annualInterestRatePct float64, termYears int) []YearBalance {
	debtService := AnnualDebtService(loanAmount, annualInterestRatePct, termYears)
	if debtService == 0 {
		return nil
	}

	schedule := make([]YearBalance, 0, termYears)
	balance := loanAmount

	for year := 1; year <= termYears; year++ {
		ending := AmortizeOneYear(balance, annualInterestRatePct, debtService)
		principal := balance - ending

		schedule = append(schedule, YearBalance{
			Year:            year,
			StartingBalance: balance,
			InterestPaid:    math.Max(debtService-principal, 0),
			PrincipalPaid:   principal,
			EndingBalance:   ending,
		})

		balance = ending
	}

	return schedule
}

// Floor ноль для отрицательного остатка, используется при показе и расчёте капитала.
func Floor(balance float64) float64 {
	return math.Max(balance, 0)
}
