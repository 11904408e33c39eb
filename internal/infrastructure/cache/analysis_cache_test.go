package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"re_deals/internal/domain/dealtest"
	"re_deals/internal/domain/service/returns"
	"re_deals/internal/domain/service/sensitivity"
	"re_deals/internal/domain/value"
	"re_deals/internal/infrastructure/cache"
)

func TestAnalysisCache(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: addr}) //nolint:exhaustruct
	defer client.Close()

	c := cache.NewAnalysisCache(client, time.Minute)
	suffix := value.NewDealID().String()

	_, found, err := c.GetAnalysis(ctx, "analysis:"+suffix)
	rq.NoError(err)
	rq.False(found)

	analysis := returns.Analyze(dealtest.RentalWithExit())
	rq.NoError(c.SetAnalysis(ctx, "analysis:"+suffix, analysis))

	got, found, err := c.GetAnalysis(ctx, "analysis:"+suffix)
	rq.NoError(err)
	rq.True(found)
	rq.Equal(analysis, got)

	grid, err := sensitivity.Build(dealtest.RentalWithExit(), value.SweepExitCapRatePct, value.SweepInterestRatePct, value.MetricIRR)
	rq.NoError(err)
	rq.NoError(c.SetGrid(ctx, "grid:"+suffix, grid))

	gotGrid, found, err := c.GetGrid(ctx, "grid:"+suffix)
	rq.NoError(err)
	rq.True(found)
	rq.Equal(grid, gotGrid)
}
