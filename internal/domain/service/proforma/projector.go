// Package proforma строит годовую проекцию сделки: аренда, вакансия, расходы,
// NOI, обслуживание долга, денежный поток, стоимость, остаток кредита и капитал.
package proforma

import (
	"math"

	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/amortization"
)

const (
	DefaultYears  = 10
	monthsPerYear = 12
)

type options struct {
	years int
}

type Option func(*options)

// WithYears меняет горизонт проекции (по умолчанию 10 лет).
func WithYears(years int) Option {
	return func(o *options) {
		if years > 0 {
			o.years = years
		}
	}
}

// LoanAmount тело кредита с учётом политики LoanBasis.
func LoanAmount(in entity.DealInputs) float64 {
	loan := in.PurchasePrice - in.DownPayment

	if in.IncludesRehabAndClosingInLoan() {
		loan += in.RehabCost + ClosingCosts(in)
	}

	return math.Max(loan, 0)
}

func ClosingCosts(in entity.DealInputs) float64 {
	return in.PurchasePrice * in.ClosingCostsPct / 100
}

// InitialValue стоимость объекта в нулевой момент (ARV после ремонта).
func InitialValue(in entity.DealInputs) float64 {
	if in.AfterRepairValue > 0 {
		return in.AfterRepairValue
	}

	return in.PurchasePrice + in.RehabCost
}

// GrossPotentialRent валовый доход первого года.
func GrossPotentialRent(in entity.DealInputs) float64 {
	switch t := in.Terms.(type) {
	case entity.RentalTerms:
		return t.GrossMonthlyIncome * monthsPerYear
	case entity.FlipTerms:
		return t.GrossMonthlyIncome * monthsPerYear
	case entity.CommercialTerms:
		var monthly float64
		for _, u := range t.UnitMix {
			monthly += float64(u.UnitCount) * u.RentPerUnit
		}
		for _, item := range t.OtherIncome {
			monthly += item.MonthlyAmount
		}
		return monthly * monthsPerYear
	}

	return 0
}

// OperatingExpenses расходы первого года.
func OperatingExpenses(in entity.DealInputs, grossPotentialRent float64) float64 {
	switch t := in.Terms.(type) {
	case entity.RentalTerms:
		return rateExpenses(t.Rates, t.Vacancy, grossPotentialRent)
	case entity.FlipTerms:
		return rateExpenses(t.Rates, t.Vacancy, grossPotentialRent)
	case entity.CommercialTerms:
		var monthly float64
		for _, item := range t.OperatingExpenses {
			monthly += item.MonthlyAmount
		}
		return monthly * monthsPerYear
	}

	return 0
}

func rateExpenses(rates entity.ExpenseRates, vacancy entity.VacancyTreatment, grossPotentialRent float64) float64 {
	pct := rates.OperatingPct()
	if vacancy == entity.VacancyInExpenseRates {
		pct += rates.VacancyPct
	}

	return grossPotentialRent * pct / 100
}

// Project годовая проекция. Пустой результат означает "ещё нельзя посчитать":
// нулевая цена, нулевой срок кредита или не задан вид сделки.
func Project(in entity.DealInputs, opts ...Option) []entity.ProFormaYearEntry {
	o := options{years: DefaultYears}
	for _, opt := range opts {
		opt(&o)
	}

	if in.PurchasePrice <= 0 || in.LoanTermYears <= 0 || in.Terms == nil {
		return nil
	}

	loanBalance := LoanAmount(in)
	debtService := amortization.AnnualDebtService(loanBalance, in.InterestRatePct, in.LoanTermYears)

	grossPotentialRent := GrossPotentialRent(in)
	operatingExpenses := OperatingExpenses(in, grossPotentialRent)
	propertyValue := InitialValue(in)
	vacancyPct := in.VacancyPct()

	entries := make([]entity.ProFormaYearEntry, 0, o.years)

	for year := 1; year <= o.years; year++ {
		vacancyLoss := grossPotentialRent * vacancyPct / 100
		effectiveGrossIncome := grossPotentialRent - vacancyLoss
		noi := effectiveGrossIncome - operatingExpenses

		// После погашения кредита платежей нет.
		yearDebtService := 0.0
		endingBalance := loanBalance
		if year <= in.LoanTermYears {
			yearDebtService = debtService
			endingBalance = amortization.AmortizeOneYear(loanBalance, in.InterestRatePct, debtService)
		}

		entries = append(entries, entity.ProFormaYearEntry{
			Year:                 year,
			GrossPotentialRent:   grossPotentialRent,
			VacancyLoss:          vacancyLoss,
			EffectiveGrossIncome: effectiveGrossIncome,
			OperatingExpenses:    operatingExpenses,
			NOI:                  noi,
			DebtService:          yearDebtService,
			CashFlowBeforeTax:    noi - yearDebtService,
			PropertyValue:        propertyValue,
			LoanBalance:          endingBalance,
			Equity:               propertyValue - amortization.Floor(endingBalance),
		})

		grossPotentialRent *= 1 + in.Growth.IncomePct/100
		operatingExpenses *= 1 + in.Growth.ExpensePct/100
		propertyValue *= 1 + in.Growth.AppreciationPct/100
		loanBalance = endingBalance
	}

	return entries
}
