package middlewarex

import (
	"log/slog"
	"mime"
	"net/http"
	"net/http/httputil"

	"re_deals/pkg/logx"
)

// RequestLogging пишет дамп входящего запроса. Тело попадает в лог только
// для JSON, logFieldMaxLen == 0 снимает ограничение длины.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, hasJSONBody(r))

			if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func hasJSONBody(r *http.Request) bool {
	if r.ContentLength == 0 {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		// клиенты без Content-Type шлют JSON
		return r.Header.Get("Content-Type") == ""
	}

	return mediaType == "application/json"
}
