package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"re_deals/pkg/logx"
)

const fieldClient = "client"

type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper пишет в лог исходящие запросы и ответы внешних API.
// Запрос и ответ связаны общим request-id.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	client              string
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
}

func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:           next,
		client:         "http",
		logFieldMaxLen: 0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logger(ctx).With(
		slog.String(fieldClient, rt.client),
		slog.String(logx.FieldRequestID, xid.New().String()),
	)

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldHTTPMethod, req.Method),
		slog.String(logx.FieldURL, rt.mask([]byte(req.URL.String()))),
		slog.String(logx.FieldRequestBody, rt.mask(rt.truncate(reqBytes))),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		log.Error(
			"next.RoundTrip",
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			logx.Error(err),
		)

		return nil, fmt.Errorf("next.RoundTrip %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Info(
		logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, rt.mask(rt.truncate(respBytes))),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) truncate(dump []byte) []byte {
	if rt.logFieldMaxLen > 0 && len(dump) > rt.logFieldMaxLen {
		return dump[:rt.logFieldMaxLen]
	}

	return dump
}

func (rt LoggingRoundTripper) mask(dump []byte) string {
	if rt.sensitiveDataMasker == nil {
		return string(dump)
	}

	return string(rt.sensitiveDataMasker.Mask(dump))
}
