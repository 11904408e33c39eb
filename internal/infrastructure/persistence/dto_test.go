package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"re_deals/internal/domain/dealtest"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/value"
)

func TestDealSchema(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		inputs entity.DealInputs
	}{
		{name: "Rental with exit", inputs: dealtest.RentalWithExit()},
		{name: "Commercial", inputs: dealtest.Commercial()},
		{name: "Flip", inputs: dealtest.Flip()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			deal := entity.Deal{
				ID:        value.NewDealID(),
				OwnerID:   "alice",
				Title:     tc.name,
				Status:    value.DealStatusPublished,
				Inputs:    tc.inputs,
				Snapshot:  returns.Analyze(tc.inputs).Metrics,
				CreatedAt: now,
				UpdatedAt: now,
			}

			schema, err := fromDeal(deal)
			rq.NoError(err)
			rq.Equal(tc.inputs.Kind().String(), schema.Kind)
			rq.Equal(2, int(-schema.MonthlyCashFlow.Exponent()))

			got, err := schema.toDomain()
			rq.NoError(err)
			rq.Equal(deal, got)
		})
	}
}

func TestDealSchemaNumericColumns(t *testing.T) {
	rq := require.New(t)

	in := dealtest.Rental()
	deal := entity.Deal{
		ID:       value.NewDealID(),
		Status:   value.DealStatusDraft,
		Inputs:   in,
		Snapshot: returns.Analyze(in).Metrics,
	}

	schema, err := fromDeal(deal)
	rq.NoError(err)

	rq.Equal("250000", schema.PurchasePrice.String())
	rq.Equal("237.85", schema.MonthlyCashFlow.String())
	rq.Equal("7.7405", schema.CapRatePct.String())
}

func TestDealSchemaBadStatus(t *testing.T) {
	rq := require.New(t)

	schema, err := fromDeal(entity.Deal{Status: value.DealStatusDraft, Inputs: dealtest.Rental()})
	rq.NoError(err)

	schema.Status = "archived"

	_, err = schema.toDomain()
	rq.ErrorContains(err, "value.ParseDealStatus")
}
