package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"re_deals/pkg/metrics"
)

func TestPrometheusServerHandler(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_deals_published_total",
		Help: "test",
	})
	registry.MustRegister(counter)
	counter.Add(3)

	handler := metrics.NewPrometheusServer("").WithGatherer(registry).Handler()

	testCases := []struct {
		name       string
		endpoint   string
		statusCode int
		contains   string
	}{
		{
			name:       "Metrics handler",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   "test_deals_published_total 3",
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			contains:   "404 page not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Contains(rec.Body.String(), tc.contains)
		})
	}
}

func TestPrometheusServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return metrics.NewPrometheusServer(":10010").Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10010/metrics", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.Contains(string(body), "go_goroutines")

	cancel()

	rq.NoError(g.Wait())
}
