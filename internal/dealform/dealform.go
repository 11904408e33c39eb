// Package dealform переводит плоскую форму сделки (JSON API, YAML файлы CLI,
// jsonb колонка) в доменные входные данные и обратно.
package dealform

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"re_deals/internal/domain/entity"
	"re_deals/pkg/rest"
)

var ErrUnknownKind = errors.New("unknown deal kind")

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Validate проверяет теги формы.
func Validate(form rest.DealInputs) error {
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("validate.Struct: %w", err)
	}

	return nil
}

func ToDomain(form rest.DealInputs) (entity.DealInputs, error) {
	in := entity.DealInputs{
		PurchasePrice:    form.PurchasePrice,
		RehabCost:        form.RehabCost,
		ClosingCostsPct:  form.ClosingCostsPct,
		DownPayment:      form.DownPayment,
		InterestRatePct:  form.InterestRatePct,
		LoanTermYears:    form.LoanTermYears,
		AfterRepairValue: form.AfterRepairValue,
		LoanBasis:        entity.LoanBasis(form.LoanBasis),
		Growth: entity.Growth{
			IncomePct:       form.AnnualIncomeGrowthPct,
			ExpensePct:      form.AnnualExpenseGrowthPct,
			AppreciationPct: form.AnnualAppreciationPct,
		},
	}

	if form.Exit != nil {
		in.Exit = &entity.Exit{
			HoldingPeriodYears: form.Exit.HoldingPeriodYears,
			SellingCostsPct:    form.Exit.SellingCostsPct,
			ExitCapRatePct:     form.Exit.ExitCapRatePct,
		}
	}

	switch entity.DealKind(form.Kind) {
	case entity.KindRental:
		in.Terms = entity.RentalTerms{
			GrossMonthlyIncome: form.GrossMonthlyIncome,
			Rates:              toRates(form.ExpenseRates),
			Vacancy:            entity.VacancyTreatment(form.VacancyTreatment),
		}
	case entity.KindFlip:
		in.Terms = entity.FlipTerms{
			GrossMonthlyIncome: form.GrossMonthlyIncome,
			Rates:              toRates(form.ExpenseRates),
			Vacancy:            entity.VacancyTreatment(form.VacancyTreatment),
		}
	case entity.KindCommercial:
		terms := entity.CommercialTerms{
			VacancyPct: form.VacancyPct,
		}
		for _, u := range form.UnitMix {
			terms.UnitMix = append(terms.UnitMix, entity.UnitMix{
				UnitType:    u.UnitType,
				UnitCount:   u.UnitCount,
				RentPerUnit: u.RentPerUnit,
			})
		}
		terms.OtherIncome = toLineItems(form.OtherIncome)
		terms.OperatingExpenses = toLineItems(form.OperatingExpenses)
		in.Terms = terms
	default:
		return entity.DealInputs{}, fmt.Errorf("%w: %q", ErrUnknownKind, form.Kind)
	}

	return in, nil
}

func FromDomain(in entity.DealInputs) rest.DealInputs {
	form := rest.DealInputs{
		Kind:                   rest.DealKind(in.Kind()),
		PurchasePrice:          in.PurchasePrice,
		RehabCost:              in.RehabCost,
		ClosingCostsPct:        in.ClosingCostsPct,
		DownPayment:            in.DownPayment,
		InterestRatePct:        in.InterestRatePct,
		LoanTermYears:          in.LoanTermYears,
		AfterRepairValue:       in.AfterRepairValue,
		LoanBasis:              string(in.LoanBasis),
		AnnualIncomeGrowthPct:  in.Growth.IncomePct,
		AnnualExpenseGrowthPct: in.Growth.ExpensePct,
		AnnualAppreciationPct:  in.Growth.AppreciationPct,
	}

	if in.Exit != nil {
		form.Exit = &rest.Exit{
			HoldingPeriodYears: in.Exit.HoldingPeriodYears,
			SellingCostsPct:    in.Exit.SellingCostsPct,
			ExitCapRatePct:     in.Exit.ExitCapRatePct,
		}
	}

	switch t := in.Terms.(type) {
	case entity.RentalTerms:
		form.GrossMonthlyIncome = t.GrossMonthlyIncome
		form.ExpenseRates = fromRates(t.Rates)
		form.VacancyTreatment = string(t.Vacancy)
	case entity.FlipTerms:
		form.GrossMonthlyIncome = t.GrossMonthlyIncome
		form.ExpenseRates = fromRates(t.Rates)
		form.VacancyTreatment = string(t.Vacancy)
	case entity.CommercialTerms:
		form.VacancyPct = t.VacancyPct
		for _, u := range t.UnitMix {
			form.UnitMix = append(form.UnitMix, rest.UnitMix{
				UnitType:    u.UnitType,
				UnitCount:   u.UnitCount,
				RentPerUnit: u.RentPerUnit,
			})
		}
		form.OtherIncome = fromLineItems(t.OtherIncome)
		form.OperatingExpenses = fromLineItems(t.OperatingExpenses)
	}

	return form
}

func toRates(rates *rest.ExpenseRates) entity.ExpenseRates {
	if rates == nil {
		return entity.ExpenseRates{}
	}

	return entity.ExpenseRates{
		PropertyTaxesPct: rates.PropertyTaxesPct,
		InsurancePct:     rates.InsurancePct,
		MaintenancePct:   rates.MaintenancePct,
		VacancyPct:       rates.VacancyPct,
		CapExPct:         rates.CapExPct,
		ManagementFeePct: rates.ManagementFeePct,
		OtherExpensesPct: rates.OtherExpensesPct,
	}
}

func fromRates(rates entity.ExpenseRates) *rest.ExpenseRates {
	return &rest.ExpenseRates{
		PropertyTaxesPct: rates.PropertyTaxesPct,
		InsurancePct:     rates.InsurancePct,
		MaintenancePct:   rates.MaintenancePct,
		VacancyPct:       rates.VacancyPct,
		CapExPct:         rates.CapExPct,
		ManagementFeePct: rates.ManagementFeePct,
		OtherExpensesPct: rates.OtherExpensesPct,
	}
}

func toLineItems(items []rest.LineItem) []entity.LineItem {
	if len(items) == 0 {
		return nil
	}

	out := make([]entity.LineItem, len(items))
	for i, item := range items {
		out[i] = entity.LineItem{Name: item.Name, MonthlyAmount: item.MonthlyAmount}
	}

	return out
}

func fromLineItems(items []entity.LineItem) []rest.LineItem {
	if len(items) == 0 {
		return nil
	}

	out := make([]rest.LineItem, len(items))
	for i, item := range items {
		out[i] = rest.LineItem{Name: item.Name, MonthlyAmount: item.MonthlyAmount}
	}

	return out
}
