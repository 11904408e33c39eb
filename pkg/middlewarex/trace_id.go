package middlewarex

import (
	"net/http"

	"re_deals/pkg/contextx"
)

const (
	HeaderNameTraceID = "X-Trace-Id"
	traceIDMaxLen     = 64
)

// TraceID берёт идентификатор трассировки из заголовка или выдаёт новый
// и возвращает его клиенту, он же уходит в supportId ответов с ошибкой.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(HeaderNameTraceID))

		if traceID == "" || len(traceID) > traceIDMaxLen {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(HeaderNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
