package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
)

// RateLimit limita as requisições por IP na janela de um minuto
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Limite de requisições excedido, tente novamente em instantes", nil)
		}),
	)
}
