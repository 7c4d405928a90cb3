package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"parcel-service/internal/handlers/rest/response"
)

const shuttingDownDetail = "service is shutting down"

// Middleware отклоняет новые запросы, пока сервер дренирует соединения.
// ongoingCtx отменяется только после server.Shutdown, поэтому основной сигнал - флаг.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				response.Error(w, http.StatusServiceUnavailable, shuttingDownDetail)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
