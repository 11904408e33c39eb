package entity

// DealKind различает калькуляторы: у каждого свой набор полей дохода и расходов.
type DealKind string

const (
	KindRental     DealKind = "rental"
	KindFlip       DealKind = "flip"
	KindCommercial DealKind = "commercial"
)

func (k DealKind) String() string {
	return string(k)
}

// LoanBasis определяет, что входит в тело кредита.
type LoanBasis string

const (
	// LoanBasisDefault берёт политику по виду сделки.
	LoanBasisDefault LoanBasis = ""
	// LoanBasisFull: price + rehab + closing - down payment.
	LoanBasisFull LoanBasis = "full"
	// LoanBasisPurchaseOnly: price - down payment, rehab оплачивается наличными.
	LoanBasisPurchaseOnly LoanBasis = "purchase_only"
)

// VacancyTreatment задаёт, как вакансия учитывается при процентных ставках расходов.
type VacancyTreatment string

const (
	// VacancySeparate: вакансия вычитается из аренды один раз, ставки расходов её не содержат.
	VacancySeparate VacancyTreatment = "separate"
	// VacancyInExpenseRates: ставка вакансии дополнительно входит в сумму ставок расходов.
	VacancyInExpenseRates VacancyTreatment = "in_expense_rates"
)

// DealInputs неизменяемый набор допущений сделки на один расчёт.
type DealInputs struct {
	PurchasePrice   float64
	RehabCost       float64
	ClosingCostsPct float64

	DownPayment     float64
	InterestRatePct float64
	LoanTermYears   int

	// AfterRepairValue переопределяет стартовую стоимость, 0 = price + rehab.
	AfterRepairValue float64
	LoanBasis        LoanBasis

	Growth Growth
	Exit   *Exit
	Terms  Terms
}

type Growth struct {
	IncomePct       float64
	ExpensePct      float64
	AppreciationPct float64
}

// Exit допущения продажи, нужны только для IRR.
type Exit struct {
	HoldingPeriodYears int
	SellingCostsPct    float64
	ExitCapRatePct     float64
}

// Terms закрытый набор вариантов сделки.
type Terms interface {
	Kind() DealKind
	sealed()
}

// ExpenseRates проценты от валового дохода.
type ExpenseRates struct {
	PropertyTaxesPct float64
	InsurancePct     float64
	MaintenancePct   float64
	VacancyPct       float64
	CapExPct         float64
	ManagementFeePct float64
	OtherExpensesPct float64
}

// OperatingPct сумма ставок без вакансии.
func (r ExpenseRates) OperatingPct() float64 {
	return r.PropertyTaxesPct + r.InsurancePct + r.MaintenancePct +
		r.CapExPct + r.ManagementFeePct + r.OtherExpensesPct
}

type RentalTerms struct {
	GrossMonthlyIncome float64
	Rates              ExpenseRates
	Vacancy            VacancyTreatment
}

func (RentalTerms) Kind() DealKind { return KindRental }
func (RentalTerms) sealed() {}

type FlipTerms struct {
	GrossMonthlyIncome float64
	Rates              ExpenseRates
	Vacancy            VacancyTreatment
}

func (FlipTerms) Kind() DealKind { return KindFlip }
func (FlipTerms) sealed() {}

type UnitMix struct {
	UnitType    string
	UnitCount   int
	RentPerUnit float64
}

// LineItem ежемесячная сумма.
type LineItem struct {
	Name          string
	MonthlyAmount float64
}

type CommercialTerms struct {
	UnitMix           []UnitMix
	OtherIncome       []LineItem
	OperatingExpenses []LineItem
	VacancyPct        float64
}

func (CommercialTerms) Kind() DealKind { return KindCommercial }
func (CommercialTerms) sealed() {}

// Kind вид сделки, пустая строка если Terms не заданы.
func (in DealInputs) Kind() DealKind {
	if in.Terms == nil {
		return ""
	}
	return in.Terms.Kind()
}

// IncludesRehabAndClosingInLoan разрешает LoanBasisDefault по виду сделки.
func (in DealInputs) IncludesRehabAndClosingInLoan() bool {
	switch in.LoanBasis {
	case LoanBasisFull:
		return true
	case LoanBasisPurchaseOnly:
		return false
	}

	return in.Kind() != KindFlip
}

// VacancyPct текущая ставка вакансии независимо от варианта.
func (in DealInputs) VacancyPct() float64 {
	switch t := in.Terms.(type) {
	case RentalTerms:
		return t.Rates.VacancyPct
	case FlipTerms:
		return t.Rates.VacancyPct
	case CommercialTerms:
		return t.VacancyPct
	}
	return 0
}

// WithVacancyPct возвращает копию с заменённой ставкой вакансии.
func (in DealInputs) WithVacancyPct(pct float64) DealInputs {
	switch t := in.Terms.(type) {
	case RentalTerms:
		t.Rates.VacancyPct = pct
		in.Terms = t
	case FlipTerms:
		t.Rates.VacancyPct = pct
		in.Terms = t
	case CommercialTerms:
		t.VacancyPct = pct
		in.Terms = t
	}
	return in
}

// WithExit возвращает копию с отдельной копией Exit, чтобы не делить указатель.
func (in DealInputs) WithExit(fn func(*Exit)) DealInputs {
	if in.Exit == nil {
		return in
	}
	exit := *in.Exit
	fn(&exit)
	in.Exit = &exit
	return in
}
