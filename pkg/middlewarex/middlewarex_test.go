package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
	"re_deals/pkg/middlewarex"
)

func TestUserID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		header string
		userID contextx.UserID
		found  bool
		status int
	}{
		{name: "With header", header: "user-1", userID: "user-1", found: true, status: http.StatusOK},
		{name: "Without header", status: http.StatusOK},
		{name: "Blank header", header: " ", status: http.StatusBadRequest},
		{name: "Header with space", header: "ivan petrov", status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				got   contextx.UserID
				found bool
			)

			h := middlewarex.UserID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				userID, err := contextx.UserIDFromContext(r.Context())
				got, found = userID, err == nil
			}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				r.Header.Set(middlewarex.HeaderNameUserID, tc.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.Equal(tc.status, w.Code)
			if tc.status == http.StatusBadRequest {
				rq.Contains(w.Body.String(), `"code":"InvalidUserID"`)
			}

			rq.Equal(tc.found, found)
			rq.Equal(tc.userID, got)
		})
	}
}

func TestTraceIDAndLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middlewarex.TraceID(middlewarex.UserID(middlewarex.Logger(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			contextx.LoggerFromContextOrDefault(r.Context()).Info("handled")
		}),
	)))

	r := httptest.NewRequest(http.MethodGet, "/v1/deals", http.NoBody)
	r.Header.Set(middlewarex.HeaderNameTraceID, "trace-1")
	r.Header.Set(middlewarex.HeaderNameUserID, "user-1")
	r = r.WithContext(contextx.WithLogger(context.Background(), base))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Equal("trace-1", w.Header().Get(middlewarex.HeaderNameTraceID))
	rq.Contains(buf.String(), `"`+logx.FieldTraceID+`":"trace-1"`)
	rq.Contains(buf.String(), `"`+logx.FieldUserID+`":"user-1"`)
}

func TestTraceIDGenerated(t *testing.T) {
	rq := require.New(t)

	var got contextx.TraceID

	h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = contextx.TraceIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.Header.Set(middlewarex.HeaderNameTraceID, strings.Repeat("t", 65))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Len(got.String(), 20)
	rq.Equal(got.String(), w.Header().Get(middlewarex.HeaderNameTraceID))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.Header.Set(middlewarex.HeaderNameTraceID, "trace-panic")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(w.Body.String(), `"supportId":"trace-panic"`)
}

func TestRequestLoggingUnlimited(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 0)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	)

	body := `{"kind":"rental","purchasePrice":250000}`
	r := httptest.NewRequest(http.MethodPost, "/v1/analysis", strings.NewReader(body))
	r = r.WithContext(contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil))))

	h.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), `purchasePrice`)
	rq.Contains(buf.String(), `250000`)
}

func TestResponseLoggingRoute(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	r := chi.NewRouter()
	r.Use(middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 0))
	r.Get("/v1/deals/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"DealNotFound"}`)) //nolint:errcheck
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/deals/6f1c1f4e-2a43-4f5e-9a53-3d3b1d1a0c11", http.NoBody)
	req = req.WithContext(contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil))))

	r.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(buf.String(), `"`+logx.FieldRoute+`":"/v1/deals/{id}"`)
	rq.Contains(buf.String(), `"`+logx.FieldResponseStatus+`":404`)
	rq.Contains(buf.String(), `"response-bytes":23`)
}
