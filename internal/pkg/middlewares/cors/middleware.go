package cors

import (
	"net/http"

	"github.com/gorilla/handlers"
	"parcel-service/internal/pkg/middlewares/request_id"
)

const preflightMaxAgeSeconds = 600

// Middleware оборачивает весь роутер: preflight OPTIONS отвечается до маршрутизации,
// иначе mux вернул бы 405 для маршрутов, объявленных только под POST или DELETE.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodDelete,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", request_id.Header}),
		handlers.ExposedHeaders([]string{request_id.Header, "Content-Disposition"}),
		handlers.MaxAge(preflightMaxAgeSeconds),
	)
}
