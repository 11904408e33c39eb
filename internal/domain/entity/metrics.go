package entity

// ReturnMetrics итоговые показатели по первому году и, опционально, по выходу.
type ReturnMetrics struct {
	MonthlyCashFlow   float64      `json:"monthly_cash_flow"`
	CapRatePct        float64      `json:"cap_rate_pct"`
	CoCReturnPct      float64      `json:"coc_return_pct"`
	NOI               float64      `json:"noi"`
	TotalCashInvested float64      `json:"total_cash_invested"`
	Exit              *ExitMetrics `json:"exit,omitempty"`
}

// ExitMetrics результат продажи на конце срока владения.
type ExitMetrics struct {
	HoldingPeriodYears int     `json:"holding_period_years"`
	SalePrice          float64 `json:"sale_price"`
	NetSaleProceeds    float64 `json:"net_sale_proceeds"`
	EquityMultiple     float64 `json:"equity_multiple"`
	// UnleveredIRRPct nil, когда IRR не сошёлся (отображается как N/A).
	UnleveredIRRPct *float64 `json:"unlevered_irr_pct"`
}

// Analysis проекция вместе с показателями.
type Analysis struct {
	Computable bool                `json:"computable"`
	Projection []ProFormaYearEntry `json:"projection"`
	Metrics    ReturnMetrics       `json:"metrics"`
}
