package proforma_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/internal/domain/dealtest"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/proforma"
)

func TestProjectRentalFirstYear(t *testing.T) {
	rq := require.New(t)

	projection := proforma.Project(dealtest.Rental())
	rq.Len(projection, proforma.DefaultYears)

	year1 := projection[0]
	rq.Equal(1, year1.Year)
	rq.InDelta(26400, year1.GrossPotentialRent, 1e-9)
	rq.InDelta(1320, year1.VacancyLoss, 1e-9)
	rq.InDelta(25080, year1.EffectiveGrossIncome, 1e-9)
	rq.InDelta(5728.80, year1.OperatingExpenses, 1e-9)
	rq.InDelta(19351.20, year1.NOI, 0.005)
	rq.InDelta(16496.98, year1.DebtService, 0.005)
	rq.InDelta(2854.22, year1.CashFlowBeforeTax, 0.005)
	rq.InDelta(260000, year1.PropertyValue, 1e-9)
	rq.InDelta(215068.95, year1.LoanBalance, 0.005)
	rq.InDelta(260000-215068.95, year1.Equity, 0.005)
}

func TestProjectGrowth(t *testing.T) {
	rq := require.New(t)

	projection := proforma.Project(dealtest.Rental())

	for i := 1; i < len(projection); i++ {
		prev, cur := projection[i-1], projection[i]

		rq.Equal(i+1, cur.Year)
		rq.InDelta(prev.GrossPotentialRent*1.03, cur.GrossPotentialRent, 1e-6)
		rq.InDelta(prev.PropertyValue*1.03, cur.PropertyValue, 1e-6)
		// Рост расходов 0%.
		rq.Equal(prev.OperatingExpenses, cur.OperatingExpenses)
		rq.Equal(prev.DebtService, cur.DebtService)
		rq.Less(cur.LoanBalance, prev.LoanBalance)
		rq.Greater(cur.Equity, prev.Equity)
	}
}

func TestProjectIdentities(t *testing.T) {
	rq := require.New(t)

	for _, in := range []entity.DealInputs{dealtest.Rental(), dealtest.Commercial(), dealtest.Flip()} {
		for _, e := range proforma.Project(in) {
			rq.Equal(e.GrossPotentialRent-e.VacancyLoss, e.EffectiveGrossIncome)
			rq.Equal(e.EffectiveGrossIncome-e.OperatingExpenses, e.NOI)
			rq.Equal(e.NOI-e.DebtService, e.CashFlowBeforeTax)

			balance := e.LoanBalance
			if balance < 0 {
				balance = 0
			}
			rq.Equal(e.PropertyValue-balance, e.Equity)
		}
	}
}

func TestProjectNotComputable(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		mutate func(*entity.DealInputs)
	}{
		{
			name:   "Zero purchase price",
			mutate: func(in *entity.DealInputs) { in.PurchasePrice = 0 },
		},
		{
			name:   "Zero loan term",
			mutate: func(in *entity.DealInputs) { in.LoanTermYears = 0 },
		},
		{
			name:   "No terms",
			mutate: func(in *entity.DealInputs) { in.Terms = nil },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			in := dealtest.Rental()
			tc.mutate(&in)

			rq.Empty(proforma.Project(in))
		})
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Commercial()

	rq.Equal(proforma.Project(in), proforma.Project(in))
}

func TestProjectCommercial(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Commercial()
	projection := proforma.Project(in)
	year1 := projection[0]

	rq.InDelta(216000, year1.GrossPotentialRent, 1e-9)
	rq.InDelta(10800, year1.VacancyLoss, 1e-9)
	rq.InDelta(60000, year1.OperatingExpenses, 1e-9)
	rq.InDelta(145200, year1.NOI, 1e-9)
	rq.InDelta(1436000, proforma.LoanAmount(in), 1e-9)
	rq.InDelta(1850000, year1.PropertyValue, 1e-9)

	rq.InDelta(60000*1.03, projection[1].OperatingExpenses, 1e-6)
	rq.InDelta(216000*1.025, projection[1].GrossPotentialRent, 1e-6)
}

func TestLoanBasis(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		inputs   entity.DealInputs
		basis    entity.LoanBasis
		expected float64
	}{
		{
			name:     "Rental defaults to full basis",
			inputs:   dealtest.Rental(),
			expected: 217500,
		},
		{
			name:     "Rental purchase only",
			inputs:   dealtest.Rental(),
			basis:    entity.LoanBasisPurchaseOnly,
			expected: 200000,
		},
		{
			name:     "Flip defaults to purchase only",
			inputs:   dealtest.Flip(),
			expected: 160000,
		},
		{
			name:     "Flip full basis",
			inputs:   dealtest.Flip(),
			basis:    entity.LoanBasisFull,
			expected: 204000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			in := tc.inputs
			in.LoanBasis = tc.basis

			rq.InDelta(tc.expected, proforma.LoanAmount(in), 1e-9)
		})
	}
}

func TestLoanAmountNeverNegative(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Rental()
	in.DownPayment = 400000

	rq.Equal(0.0, proforma.LoanAmount(in))

	projection := proforma.Project(in)
	rq.Equal(0.0, projection[0].DebtService)
	rq.Equal(projection[0].NOI, projection[0].CashFlowBeforeTax)
}

func TestVacancyTreatment(t *testing.T) {
	rq := require.New(t)

	separate := dealtest.Rental()

	doubled := dealtest.Rental()
	terms := doubled.Terms.(entity.RentalTerms)
	terms.Vacancy = entity.VacancyInExpenseRates
	doubled.Terms = terms

	rq.InDelta(19351.20, proforma.Project(separate)[0].NOI, 0.005)
	rq.InDelta(18031.20, proforma.Project(doubled)[0].NOI, 0.005)
}

func TestAfterRepairValue(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Flip()
	projection := proforma.Project(in)

	rq.InDelta(300000, projection[0].PropertyValue, 1e-9)
	rq.InDelta(300000, proforma.InitialValue(in), 1e-9)

	in.AfterRepairValue = 0
	rq.InDelta(240000, proforma.InitialValue(in), 1e-9)
}

func TestDebtServiceStopsAfterTerm(t *testing.T) {
	rq := require.New(t)

	projection := proforma.Project(dealtest.Flip())

	rq.Positive(projection[0].DebtService)
	rq.InDelta(0, projection[0].LoanBalance, 1e-6)

	for _, e := range projection[1:] {
		rq.Equal(0.0, e.DebtService)
		rq.Equal(projection[0].LoanBalance, e.LoanBalance)
	}
}

func TestProjectZeroRateLoanPaidOff(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Rental()
	in.InterestRatePct = 0

	projection := proforma.Project(in)
	year1 := projection[0]

	rq.InDelta(proforma.LoanAmount(in)/float64(in.LoanTermYears), year1.DebtService, 1e-6)
	rq.Equal(0.0, year1.LoanBalance)
	rq.Equal(year1.PropertyValue, year1.Equity)
}

func TestWithYears(t *testing.T) {
	rq := require.New(t)

	rq.Len(proforma.Project(dealtest.Rental(), proforma.WithYears(15)), 15)
	rq.Len(proforma.Project(dealtest.Rental(), proforma.WithYears(0)), proforma.DefaultYears)
}
