// Package dealtest содержит эталонные сделки для тестов.
package dealtest

import "re_deals/internal/domain/entity"

// Rental сдаваемый дом из регрессионного сценария:
// NOI 19 351.20, cap rate 7.74%, cash flow 237.85/мес, CoC 4.23%.
func Rental() entity.DealInputs {
	return entity.DealInputs{
		PurchasePrice:   250000,
		RehabCost:       10000,
		ClosingCostsPct: 3,
		DownPayment:     50000,
		InterestRatePct: 6.5,
		LoanTermYears:   30,
		Growth: entity.Growth{
			IncomePct:       3,
			AppreciationPct: 3,
		},
		Terms: entity.RentalTerms{
			GrossMonthlyIncome: 2200,
			Rates: entity.ExpenseRates{
				PropertyTaxesPct: 1.2,
				InsurancePct:     0.5,
				MaintenancePct:   5,
				VacancyPct:       5,
				CapExPct:         5,
				ManagementFeePct: 8,
				OtherExpensesPct: 2,
			},
		},
	}
}

// RentalWithExit Rental с продажей через 5 лет.
func RentalWithExit() entity.DealInputs {
	in := Rental()
	in.Exit = &entity.Exit{
		HoldingPeriodYears: 5,
		SellingCostsPct:    6,
		ExitCapRatePct:     7,
	}
	return in
}

// Commercial многоквартирный объект со статьями расходов.
func Commercial() entity.DealInputs {
	return entity.DealInputs{
		PurchasePrice:   1800000,
		RehabCost:       50000,
		ClosingCostsPct: 2,
		DownPayment:     450000,
		InterestRatePct: 7,
		LoanTermYears:   25,
		Growth: entity.Growth{
			IncomePct:       2.5,
			ExpensePct:      3,
			AppreciationPct: 2,
		},
		Exit: &entity.Exit{
			HoldingPeriodYears: 7,
			SellingCostsPct:    4,
			ExitCapRatePct:     7.5,
		},
		Terms: entity.CommercialTerms{
			UnitMix: []entity.UnitMix{
				{UnitType: "1BR", UnitCount: 10, RentPerUnit: 1000},
				{UnitType: "2BR", UnitCount: 5, RentPerUnit: 1500},
			},
			OtherIncome: []entity.LineItem{
				{Name: "Laundry", MonthlyAmount: 500},
			},
			OperatingExpenses: []entity.LineItem{
				{Name: "Taxes", MonthlyAmount: 3000},
				{Name: "Insurance", MonthlyAmount: 800},
				{Name: "Management", MonthlyAmount: 1200},
			},
			VacancyPct: 5,
		},
	}
}

// Flip объект под перепродажу: ремонт оплачивается наличными.
func Flip() entity.DealInputs {
	return entity.DealInputs{
		PurchasePrice:    200000,
		RehabCost:        40000,
		ClosingCostsPct:  2,
		DownPayment:      40000,
		InterestRatePct:  9,
		LoanTermYears:    1,
		AfterRepairValue: 300000,
		Terms: entity.FlipTerms{
			GrossMonthlyIncome: 0,
		},
	}
}
