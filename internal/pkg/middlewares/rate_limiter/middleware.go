package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/middlewares/request_id"
	"parcel-service/internal/pkg/middlewares/route"
	"parcel-service/pkg/logger"
)

const limitExceededDetail = "rate limit exceeded, try again later"

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)

// Middleware общий лимит на весь сервис, без разбивки по клиентам.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.Error(w, http.StatusTooManyRequests, limitExceededDetail)
		})
	}
}
