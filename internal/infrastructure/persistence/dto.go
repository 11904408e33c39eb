package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"re_deals/internal/dealform"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// dealSchema строка таблицы deals. Входные данные хранятся в форме API,
// денежные колонки продублированы в NUMERIC для сортировки и отчётов.
type dealSchema struct {
	ID              uuid.UUID       `db:"id"`
	OwnerID         string          `db:"owner_id"`
	Title           string          `db:"title"`
	Kind            string          `db:"kind"`
	Status          string          `db:"status"`
	PurchasePrice   decimal.Decimal `db:"purchase_price"`
	MonthlyCashFlow decimal.Decimal `db:"monthly_cash_flow"`
	CapRatePct      decimal.Decimal `db:"cap_rate_pct"`
	CoCReturnPct    decimal.Decimal `db:"coc_return_pct"`
	Inputs          string          `db:"inputs"`
	Snapshot        string          `db:"snapshot"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func fromDeal(d entity.Deal) (dealSchema, error) {
	inputs, err := json.Marshal(dealform.FromDomain(d.Inputs))
	if err != nil {
		return dealSchema{}, fmt.Errorf("json.Marshal(inputs): %w", err)
	}

	snapshot, err := json.Marshal(d.Snapshot)
	if err != nil {
		return dealSchema{}, fmt.Errorf("json.Marshal(snapshot): %w", err)
	}

	return dealSchema{
		ID:              uuid.UUID(d.ID),
		OwnerID:         d.OwnerID,
		Title:           d.Title,
		Kind:            d.Inputs.Kind().String(),
		Status:          d.Status.String(),
		PurchasePrice:   money(d.Inputs.PurchasePrice),
		MonthlyCashFlow: money(d.Snapshot.MonthlyCashFlow),
		CapRatePct:      decimal.NewFromFloat(d.Snapshot.CapRatePct).Round(4),
		CoCReturnPct:    decimal.NewFromFloat(d.Snapshot.CoCReturnPct).Round(4),
		Inputs:          string(inputs),
		Snapshot:        string(snapshot),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func (s dealSchema) toDomain() (entity.Deal, error) {
	var form rest.DealInputs
	if err := json.Unmarshal([]byte(s.Inputs), &form); err != nil {
		return entity.Deal{}, fmt.Errorf("json.Unmarshal(inputs): %w", err)
	}

	inputs, err := dealform.ToDomain(form)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("dealform.ToDomain: %w", err)
	}

	var snapshot entity.ReturnMetrics
	if err = json.Unmarshal([]byte(s.Snapshot), &snapshot); err != nil {
		return entity.Deal{}, fmt.Errorf("json.Unmarshal(snapshot): %w", err)
	}

	status, err := value.ParseDealStatus(s.Status)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("value.ParseDealStatus: %w", err)
	}

	return entity.Deal{
		ID:        value.DealID(s.ID),
		OwnerID:   s.OwnerID,
		Title:     s.Title,
		Status:    status,
		Inputs:    inputs,
		Snapshot:  snapshot,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
