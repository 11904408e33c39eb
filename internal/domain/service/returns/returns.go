// Package returns считает итоговые показатели сделки по проекции: cap rate,
// cash-on-cash, месячный денежный поток и, при заданном выходе, IRR и equity multiple.
package returns

import (
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/proforma"
)

// TotalCashInvested первоначальный взнос, расходы на сделку и ремонт.
func TotalCashInvested(in entity.DealInputs) float64 {
	return in.DownPayment + proforma.ClosingCosts(in) + in.RehabCost
}

// Summarize показатели по первому году проекции. ok == false для пустой проекции.
// Нулевые и отрицательные знаменатели дают 0, а не ошибку.
func Summarize(projection []entity.ProFormaYearEntry, in entity.DealInputs) (entity.ReturnMetrics, bool) {
	if len(projection) == 0 {
		return entity.ReturnMetrics{}, false
	}

	year1 := projection[0]
	invested := TotalCashInvested(in)

	metrics := entity.ReturnMetrics{
		MonthlyCashFlow:   year1.CashFlowBeforeTax / 12,
		CapRatePct:        ratioPct(year1.NOI, in.PurchasePrice),
		CoCReturnPct:      ratioPct(year1.CashFlowBeforeTax, invested),
		NOI:               year1.NOI,
		TotalCashInvested: invested,
	}

	if in.Exit != nil {
		if exit, ok := exitMetrics(projection, in, invested); ok {
			metrics.Exit = &exit
		}
	}

	return metrics, true
}

// Analyze проекция и показатели за один вызов.
func Analyze(in entity.DealInputs, opts ...proforma.Option) entity.Analysis {
	projection := proforma.Project(in, opts...)
	metrics, ok := Summarize(projection, in)

	return entity.Analysis{
		Computable: ok,
		Projection: projection,
		Metrics:    metrics,
	}
}

// CashFlowStream поток для IRR: [-invested, cf_1, ..., cf_h + netSale].
func CashFlowStream(projection []entity.ProFormaYearEntry, holdingPeriodYears int, invested, netSaleProceeds float64) []float64 {
	stream := make([]float64, 0, holdingPeriodYears+1)
	stream = append(stream, -invested)

	for i := range holdingPeriodYears {
		stream = append(stream, projection[i].CashFlowBeforeTax)
	}

	stream[holdingPeriodYears] += netSaleProceeds

	return stream
}

func exitMetrics(projection []entity.ProFormaYearEntry, in entity.DealInputs, invested float64) (entity.ExitMetrics, bool) {
	h := in.Exit.HoldingPeriodYears
	if h < 1 || h > len(projection) {
		return entity.ExitMetrics{}, false
	}

	exitYear := projection[h-1]

	// Цена продажи капитализирует NOI следующего года.
	exitNOI := exitYear.NOI * (1 + in.Growth.IncomePct/100)

	var salePrice float64
	if in.Exit.ExitCapRatePct > 0 {
		salePrice = exitNOI / (in.Exit.ExitCapRatePct / 100)
	}

	netSaleProceeds := salePrice - salePrice*in.Exit.SellingCostsPct/100 - exitYear.LoanBalance

	stream := CashFlowStream(projection, h, invested, netSaleProceeds)

	var totalReturned float64
	for _, cf := range stream[1:] {
		totalReturned += cf
	}

	exit := entity.ExitMetrics{
		HoldingPeriodYears: h,
		SalePrice:          salePrice,
		NetSaleProceeds:    netSaleProceeds,
		EquityMultiple:     ratio(totalReturned, invested),
	}

	if invested > 0 {
		if irr, ok := IRR(stream); ok {
			pct := irr * 100
			exit.UnleveredIRRPct = &pct
		}
	}

	return exit, true
}

func ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return numerator / denominator
}

func ratioPct(numerator, denominator float64) float64 {
	return ratio(numerator, denominator) * 100
}
