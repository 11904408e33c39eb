package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"re_deals/internal/dealform"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/contextx"
	"re_deals/pkg/errcodes"
	"re_deals/pkg/lox"
	"re_deals/pkg/rest"
)

func newDomainInputs(form rest.DealInputs) (entity.DealInputs, error) {
	inputs, err := dealform.ToDomain(form)
	if err != nil {
		return entity.DealInputs{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("dealform.ToDomain: %w", err),
			failure.WithCode(errcodes.InvalidDealInputs),
		)
	}

	return inputs, nil
}

func parseDealID(s string) (value.DealID, error) {
	id, err := value.ParseDealID(s)
	if err != nil {
		return value.DealID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseDealID: %w", err),
			failure.WithCode(errcodes.InvalidDealID),
		)
	}

	return id, nil
}

func parseGridParams(a, b, m string) (value.SweepVariable, value.SweepVariable, value.Metric, error) {
	varA, err := value.ParseSweepVariable(a)
	if err != nil {
		return "", "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseSweepVariable(a): %w", err),
			failure.WithCode(errcodes.InvalidSweepVariable),
		)
	}

	varB, err := value.ParseSweepVariable(b)
	if err != nil {
		return "", "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseSweepVariable(b): %w", err),
			failure.WithCode(errcodes.InvalidSweepVariable),
		)
	}

	metric, err := value.ParseMetric(m)
	if err != nil {
		return "", "", "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseMetric: %w", err),
			failure.WithCode(errcodes.InvalidMetric),
		)
	}

	return varA, varB, metric, nil
}

// parsePaging пустые limit и offset означают значения по умолчанию.
func parsePaging(r *http.Request) (int, int, error) {
	q := r.URL.Query()

	var limit, offset int

	for name, dest := range map[string]*int{"limit": &limit, "offset": &offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, failure.NewInvalidArgumentError(
				fmt.Sprintf("invalid %s %q", name, raw),
				failure.WithCode(errcodes.InvalidPaging),
				failure.WithDescription(name+" must be an integer"),
			)
		}

		*dest = v
	}

	return limit, offset, nil
}

// userID пустая строка для анонимного запроса.
func userID(ctx context.Context) string {
	id, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return ""
	}

	return id.String()
}

func newRESTAnalysis(analysis entity.Analysis) rest.Analysis {
	out := rest.Analysis{
		Computable: analysis.Computable,
		Projection: lox.Map(analysis.Projection, newRESTYear),
	}

	if analysis.Computable {
		metrics := newRESTMetrics(analysis.Metrics)
		out.Metrics = &metrics
	}

	return out
}

func newRESTYear(e entity.ProFormaYearEntry) rest.ProFormaYear {
	return rest.ProFormaYear{
		Year:                 e.Year,
		GrossPotentialRent:   e.GrossPotentialRent,
		VacancyLoss:          e.VacancyLoss,
		EffectiveGrossIncome: e.EffectiveGrossIncome,
		OperatingExpenses:    e.OperatingExpenses,
		NOI:                  e.NOI,
		DebtService:          e.DebtService,
		CashFlowBeforeTax:    e.CashFlowBeforeTax,
		PropertyValue:        e.PropertyValue,
		LoanBalance:          e.LoanBalance,
		Equity:               e.Equity,
	}
}

func newRESTMetrics(m entity.ReturnMetrics) rest.ReturnMetrics {
	out := rest.ReturnMetrics{
		MonthlyCashFlow:   m.MonthlyCashFlow,
		CapRatePct:        m.CapRatePct,
		CoCReturnPct:      m.CoCReturnPct,
		NOI:               m.NOI,
		TotalCashInvested: m.TotalCashInvested,
	}

	if m.Exit != nil {
		out.Exit = &rest.ExitMetrics{
			HoldingPeriodYears: m.Exit.HoldingPeriodYears,
			SalePrice:          m.Exit.SalePrice,
			NetSaleProceeds:    m.Exit.NetSaleProceeds,
			EquityMultiple:     m.Exit.EquityMultiple,
			UnleveredIRRPct:    m.Exit.UnleveredIRRPct,
		}
	}

	return out
}

func newRESTGrid(grid entity.SensitivityGrid) rest.SensitivityGrid {
	rows := lox.MapGrid(grid.Rows, func(c entity.SensitivityCell) rest.SensitivityCell {
		return rest.SensitivityCell{A: c.A, B: c.B, Value: c.Value}
	})

	return rest.SensitivityGrid{
		VariableA: grid.VariableA.String(),
		VariableB: grid.VariableB.String(),
		Metric:    grid.Metric.String(),
		RangeA:    grid.RangeA,
		RangeB:    grid.RangeB,
		Rows:      rows,
	}
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	out := rest.Deal{
		ID:        deal.ID.String(),
		OwnerID:   deal.OwnerID,
		Title:     deal.Title,
		Status:    deal.Status.String(),
		Inputs:    dealform.FromDomain(deal.Inputs),
		CreatedAt: deal.CreatedAt,
		UpdatedAt: deal.UpdatedAt,
	}

	if deal.Snapshot.TotalCashInvested != 0 || deal.Snapshot.NOI != 0 {
		snapshot := newRESTMetrics(deal.Snapshot)
		out.Snapshot = &snapshot
	}

	return out
}
