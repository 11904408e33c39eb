package dealform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"re_deals/internal/dealform"
	"re_deals/internal/domain/dealtest"
	"re_deals/internal/domain/entity"
	"re_deals/pkg/rest"
)

func TestFormPreservesInputs(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		inputs entity.DealInputs
	}{
		{name: "Rental", inputs: dealtest.Rental()},
		{name: "Rental with exit", inputs: dealtest.RentalWithExit()},
		{name: "Commercial", inputs: dealtest.Commercial()},
		{name: "Flip", inputs: dealtest.Flip()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			form := dealform.FromDomain(tc.inputs)
			rq.NoError(dealform.Validate(form))

			got, err := dealform.ToDomain(form)
			rq.NoError(err)
			rq.Equal(tc.inputs, got)
		})
	}
}

func TestToDomainUnknownKind(t *testing.T) {
	rq := require.New(t)

	_, err := dealform.ToDomain(rest.DealInputs{Kind: "land"})
	rq.ErrorIs(err, dealform.ErrUnknownKind)
}

func TestValidate(t *testing.T) {
	rq := require.New(t)

	valid := dealform.FromDomain(dealtest.Rental())
	rq.NoError(dealform.Validate(valid))
	rq.NoError(dealform.Validate(dealform.FromDomain(dealtest.RentalWithExit())))

	testCases := []struct {
		name   string
		mutate func(*rest.DealInputs)
	}{
		{name: "Missing kind", mutate: func(f *rest.DealInputs) { f.Kind = "" }},
		{name: "Unknown kind", mutate: func(f *rest.DealInputs) { f.Kind = "land" }},
		{name: "Negative price", mutate: func(f *rest.DealInputs) { f.PurchasePrice = -1 }},
		{name: "Closing over 100", mutate: func(f *rest.DealInputs) { f.ClosingCostsPct = 120 }},
		{name: "Unknown loan basis", mutate: func(f *rest.DealInputs) { f.LoanBasis = "interest_only" }},
		{name: "Negative rate", mutate: func(f *rest.DealInputs) { f.ExpenseRates.MaintenancePct = -5 }},
		{name: "Negative exit cap", mutate: func(f *rest.DealInputs) {
			f.Exit = &rest.Exit{HoldingPeriodYears: 5, ExitCapRatePct: -7}
		}},
		{name: "Rate over 100", mutate: func(f *rest.DealInputs) { f.ExpenseRates.ManagementFeePct = 150 }},
		{name: "Exit cap over 100", mutate: func(f *rest.DealInputs) {
			f.Exit = &rest.Exit{HoldingPeriodYears: 5, ExitCapRatePct: 101}
		}},
		{name: "Zero holding period", mutate: func(f *rest.DealInputs) {
			f.Exit = &rest.Exit{HoldingPeriodYears: 0, ExitCapRatePct: 7}
		}},
		{name: "Holding period over 10", mutate: func(f *rest.DealInputs) {
			f.Exit = &rest.Exit{HoldingPeriodYears: 11, ExitCapRatePct: 7}
		}},
		{name: "Negative unit count", mutate: func(f *rest.DealInputs) {
			f.UnitMix = []rest.UnitMix{{UnitType: "1BR", UnitCount: -2}}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			form := valid
			rates := *valid.ExpenseRates
			form.ExpenseRates = &rates

			tc.mutate(&form)

			rq.Error(dealform.Validate(form))
		})
	}
}

func TestYAMLForm(t *testing.T) {
	rq := require.New(t)

	const doc = `
kind: commercial
purchasePrice: 1800000
rehabCost: 50000
closingCostsPct: 2
downPayment: 450000
interestRatePct: 7
loanTermYears: 25
annualIncomeGrowthPct: 2.5
annualExpenseGrowthPct: 3
annualAppreciationPct: 2
exit:
  holdingPeriodYears: 7
  sellingCostsPct: 4
  exitCapRatePct: 7.5
unitMix:
  - {unitType: 1BR, unitCount: 10, rentPerUnit: 1000}
  - {unitType: 2BR, unitCount: 5, rentPerUnit: 1500}
otherIncome:
  - {name: Laundry, monthlyAmount: 500}
operatingExpenses:
  - {name: Taxes, monthlyAmount: 3000}
  - {name: Insurance, monthlyAmount: 800}
  - {name: Management, monthlyAmount: 1200}
vacancyPct: 5
`

	var form rest.DealInputs
	rq.NoError(yaml.Unmarshal([]byte(doc), &form))
	rq.NoError(dealform.Validate(form))

	in, err := dealform.ToDomain(form)
	rq.NoError(err)
	rq.Equal(dealtest.Commercial(), in)
}
