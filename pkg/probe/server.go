package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"re_deals/pkg/contextx"
	"re_deals/pkg/httpx"
	"re_deals/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const defaultCheckTimeout = 2 * time.Second

const statusOK = "ok"

// Check проверка зависимости для /ready, например пинг Postgres.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Server struct {
	listenAddress string
	options       Options
	checks        []Check
	checkTimeout  time.Duration
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type readyState struct {
	Options
	Checks map[string]string `json:"checks,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
	checks ...Check,
) Server {
	return Server{
		listenAddress: listenAddress,
		options:       options,
		checks:        checks,
		checkTimeout:  defaultCheckTimeout,
	}
}

func (s Server) WithCheckTimeout(timeout time.Duration) Server {
	s.checkTimeout = timeout

	return s
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	return httpx.Serve(ctx, "probe", s.listenAddress, s.Handler())
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK, readyState{Options: s.options}) //nolint:exhaustruct
}

// handlerReady опрашивает зависимости параллельно, 503 если хотя бы одна недоступна.
func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.checkTimeout)
	defer cancel()

	results := make([]string, len(s.checks))

	var g errgroup.Group

	for i, check := range s.checks {
		g.Go(func() error {
			results[i] = statusOK

			if err := check.Ping(ctx); err != nil {
				logger(ctx).Warn("probe check failed", slog.String("check", check.Name), logx.Error(err))

				results[i] = err.Error()
			}

			return nil
		})
	}

	_ = g.Wait()

	state := readyState{Options: s.options} //nolint:exhaustruct
	status := http.StatusOK

	if len(s.checks) > 0 {
		state.Checks = make(map[string]string, len(s.checks))
	}

	for i, check := range s.checks {
		state.Checks[check.Name] = results[i]

		if results[i] != statusOK {
			status = http.StatusServiceUnavailable
		}
	}

	s.write(w, status, state)
}

func (s Server) write(w http.ResponseWriter, status int, state readyState) {
	body, _ := json.Marshal(state) //nolint:errcheck,errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}
