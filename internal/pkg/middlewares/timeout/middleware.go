package timeout

import (
	"context"
	"net/http"
	"time"

	"parcel-service/internal/pkg/middlewares/route"
)

// Middleware ограничивает время обработки запроса. overrides задаёт отдельный
// таймаут для шаблонов роутов (загрузка фото ждёт геокодер), 0 - без ограничения.
func Middleware(timeout time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := timeout
			if override, ok := overrides[route.Template(r)]; ok {
				limit = override
			}

			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
