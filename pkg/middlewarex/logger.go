package middlewarex

import (
	"log/slog"
	"net/http"

	"re_deals/pkg/contextx"
	"re_deals/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger кладёт в контекст логгер с полями запроса. Должен стоять после TraceID и UserID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
		}

		attrs := []any{
			logx.Stringer(logx.FieldTraceID, traceID),
			logx.Stringer(logx.FieldURL, r.URL),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if userID, err := contextx.UserIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldUserID, userID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
