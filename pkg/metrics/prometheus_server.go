package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"re_deals/pkg/httpx"
)

// PrometheusServer отдаёт /metrics из указанного реестра.
type PrometheusServer struct {
	listenAddress string
	gatherer      prometheus.Gatherer
}

func NewPrometheusServer(listenAddress string) PrometheusServer {
	return PrometheusServer{
		listenAddress: listenAddress,
		gatherer:      prometheus.DefaultGatherer,
	}
}

// WithGatherer подменяет реестр, используется в тестах.
func (p PrometheusServer) WithGatherer(gatherer prometheus.Gatherer) PrometheusServer {
	p.gatherer = gatherer

	return p
}

func (p PrometheusServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})) //nolint:exhaustruct

	return mux
}

func (p PrometheusServer) Run(ctx context.Context) error {
	return httpx.Serve(ctx, "prometheus", p.listenAddress, p.Handler())
}
