// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// DealKind Вид сделки
type DealKind string

const (
	DealKindRental     DealKind = "rental"
	DealKindFlip       DealKind = "flip"
	DealKindCommercial DealKind = "commercial"
)

// DealInputs Плоская форма сделки. Поля, не относящиеся к виду сделки, игнорируются.
type DealInputs struct {
	Kind DealKind `json:"kind" yaml:"kind" validate:"required,oneof=rental flip commercial"`

	PurchasePrice    float64 `json:"purchasePrice" yaml:"purchasePrice" validate:"gte=0"`
	RehabCost        float64 `json:"rehabCost" yaml:"rehabCost" validate:"gte=0"`
	ClosingCostsPct  float64 `json:"closingCostsPct" yaml:"closingCostsPct" validate:"gte=0,lte=100"`
	DownPayment      float64 `json:"downPayment" yaml:"downPayment" validate:"gte=0"`
	InterestRatePct  float64 `json:"interestRatePct" yaml:"interestRatePct" validate:"gte=0,lte=100"`
	LoanTermYears    int     `json:"loanTermYears" yaml:"loanTermYears" validate:"gte=0,lte=100"`
	AfterRepairValue float64 `json:"afterRepairValue,omitempty" yaml:"afterRepairValue" validate:"gte=0"`

	// LoanBasis full или purchase_only, пусто - по виду сделки
	LoanBasis string `json:"loanBasis,omitempty" yaml:"loanBasis" validate:"omitempty,oneof=full purchase_only"`

	AnnualIncomeGrowthPct  float64 `json:"annualIncomeGrowthPct" yaml:"annualIncomeGrowthPct"`
	AnnualExpenseGrowthPct float64 `json:"annualExpenseGrowthPct" yaml:"annualExpenseGrowthPct"`
	AnnualAppreciationPct  float64 `json:"annualAppreciationPct" yaml:"annualAppreciationPct"`

	Exit *Exit `json:"exit,omitempty" yaml:"exit"`

	// Rental и flip
	GrossMonthlyIncome float64       `json:"grossMonthlyIncome,omitempty" yaml:"grossMonthlyIncome" validate:"gte=0"`
	ExpenseRates       *ExpenseRates `json:"expenseRates,omitempty" yaml:"expenseRates"`
	// VacancyTreatment separate или in_expense_rates
	VacancyTreatment string `json:"vacancyTreatment,omitempty" yaml:"vacancyTreatment" validate:"omitempty,oneof=separate in_expense_rates"`

	// Commercial
	UnitMix           []UnitMix  `json:"unitMix,omitempty" yaml:"unitMix" validate:"dive"`
	OtherIncome       []LineItem `json:"otherIncome,omitempty" yaml:"otherIncome" validate:"dive"`
	OperatingExpenses []LineItem `json:"operatingExpenses,omitempty" yaml:"operatingExpenses" validate:"dive"`
	VacancyPct        float64    `json:"vacancyPct,omitempty" yaml:"vacancyPct" validate:"gte=0,lte=100"`
}

type Exit struct {
	HoldingPeriodYears int     `json:"holdingPeriodYears" yaml:"holdingPeriodYears" validate:"gte=1,lte=10"`
	SellingCostsPct    float64 `json:"sellingCostsPct" yaml:"sellingCostsPct" validate:"gte=0,lte=100"`
	ExitCapRatePct     float64 `json:"exitCapRatePct" yaml:"exitCapRatePct" validate:"gte=0,lte=100"`
}

// ExpenseRates Проценты от валового дохода
type ExpenseRates struct {
	PropertyTaxesPct float64 `json:"propertyTaxesPct" yaml:"propertyTaxesPct" validate:"gte=0,lte=100"`
	InsurancePct     float64 `json:"insurancePct" yaml:"insurancePct" validate:"gte=0,lte=100"`
	MaintenancePct   float64 `json:"maintenancePct" yaml:"maintenancePct" validate:"gte=0,lte=100"`
	VacancyPct       float64 `json:"vacancyPct" yaml:"vacancyPct" validate:"gte=0,lte=100"`
	CapExPct         float64 `json:"capExPct" yaml:"capExPct" validate:"gte=0,lte=100"`
	ManagementFeePct float64 `json:"managementFeePct" yaml:"managementFeePct" validate:"gte=0,lte=100"`
	OtherExpensesPct float64 `json:"otherExpensesPct" yaml:"otherExpensesPct" validate:"gte=0,lte=100"`
}

type UnitMix struct {
	UnitType    string  `json:"unitType" yaml:"unitType"`
	UnitCount   int     `json:"unitCount" yaml:"unitCount" validate:"gte=0"`
	RentPerUnit float64 `json:"rentPerUnit" yaml:"rentPerUnit" validate:"gte=0"`
}

type LineItem struct {
	Name          string  `json:"name" yaml:"name"`
	MonthlyAmount float64 `json:"monthlyAmount" yaml:"monthlyAmount" validate:"gte=0"`
}

// ProFormaYear Строка годовой проекции
type ProFormaYear struct {
	Year                 int     `json:"year"`
	GrossPotentialRent   float64 `json:"grossPotentialRent"`
	VacancyLoss          float64 `json:"vacancyLoss"`
	EffectiveGrossIncome float64 `json:"effectiveGrossIncome"`
	OperatingExpenses    float64 `json:"operatingExpenses"`
	NOI                  float64 `json:"noi"`
	DebtService          float64 `json:"debtService"`
	CashFlowBeforeTax    float64 `json:"cashFlowBeforeTax"`
	PropertyValue        float64 `json:"propertyValue"`
	LoanBalance          float64 `json:"loanBalance"`
	Equity               float64 `json:"equity"`
}

type ReturnMetrics struct {
	MonthlyCashFlow   float64      `json:"monthlyCashFlow"`
	CapRatePct        float64      `json:"capRatePct"`
	CoCReturnPct      float64      `json:"cocReturnPct"`
	NOI               float64      `json:"noi"`
	TotalCashInvested float64      `json:"totalCashInvested"`
	Exit              *ExitMetrics `json:"exit,omitempty"`
}

type ExitMetrics struct {
	HoldingPeriodYears int     `json:"holdingPeriodYears"`
	SalePrice          float64 `json:"salePrice"`
	NetSaleProceeds    float64 `json:"netSaleProceeds"`
	EquityMultiple     float64 `json:"equityMultiple"`
	// UnleveredIRRPct null, если IRR не определён
	UnleveredIRRPct *float64 `json:"unleveredIrrPct"`
}

// Analysis Результат расчёта. Computable=false: данных ещё недостаточно.
type Analysis struct {
	Computable bool           `json:"computable"`
	Projection []ProFormaYear `json:"projection"`
	Metrics    *ReturnMetrics `json:"metrics,omitempty"`
}

type SensitivityRequest struct {
	Inputs    DealInputs `json:"inputs" validate:"required"`
	VariableA string     `json:"variableA" validate:"required"`
	VariableB string     `json:"variableB" validate:"required"`
	Metric    string     `json:"metric" validate:"required"`
}

type SensitivityCell struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	// Value null означает N/A
	Value *float64 `json:"value"`
}

type SensitivityGrid struct {
	VariableA string              `json:"variableA"`
	VariableB string              `json:"variableB"`
	Metric    string              `json:"metric"`
	RangeA    []float64           `json:"rangeA"`
	RangeB    []float64           `json:"rangeB"`
	Rows      [][]SensitivityCell `json:"rows"`
}

type DealRequest struct {
	Title  string     `json:"title" validate:"required,max=200"`
	Inputs DealInputs `json:"inputs" validate:"required"`
}

type Deal struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"ownerId"`
	Title     string         `json:"title"`
	Status    string         `json:"status"`
	Inputs    DealInputs     `json:"inputs"`
	Snapshot  *ReturnMetrics `json:"snapshot,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type DealList struct {
	Items  []Deal `json:"items"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
