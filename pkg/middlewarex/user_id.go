package middlewarex

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"re_deals/pkg/contextx"
	"re_deals/pkg/errcodes"
	"re_deals/pkg/httpx/reply"
)

// HeaderNameUserID заголовок, который выставляет шлюз аутентификации.
const HeaderNameUserID = "X-User-Id"

// UserID переносит идентификатор пользователя из заголовка в контекст.
// Запрос без заголовка проходит дальше анонимным, с битым заголовком получает 400.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := r.Header[http.CanonicalHeaderKey(HeaderNameUserID)]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := contextx.ParseUserID(raw[0])
		if err != nil {
			reply.Error(r.Context(), w, failure.NewInvalidArgumentErrorFromError(
				err,
				failure.WithCode(errcodes.InvalidUserID),
				failure.WithDescription("Invalid "+HeaderNameUserID+" header"),
			))

			return
		}

		ctx := contextx.WithUserID(r.Context(), userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
