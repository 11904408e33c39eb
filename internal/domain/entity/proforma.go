package entity

// ProFormaYearEntry годовой срез проекции, все суммы номинальные за год.
type ProFormaYearEntry struct {
	Year                 int     `json:"year"`
	GrossPotentialRent   float64 `json:"gross_potential_rent"`
	VacancyLoss          float64 `json:"vacancy_loss"`
	EffectiveGrossIncome float64 `json:"effective_gross_income"`
	OperatingExpenses    float64 `json:"operating_expenses"`
	NOI                  float64 `json:"noi"`
	DebtService          float64 `json:"debt_service"`
	CashFlowBeforeTax    float64 `json:"cash_flow_before_tax"`
	PropertyValue        float64 `json:"property_value"`
	LoanBalance          float64 `json:"loan_balance"`
	Equity               float64 `json:"equity"`
}
