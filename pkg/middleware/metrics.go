package middleware

import (
	"net/http"
	"time"
)

// RequestObserver recebe a duração e o status de cada requisição
type RequestObserver interface {
	ObserveRequest(route string, status int, elapsed time.Duration)
}

// Metrics instrumenta uma rota. route deve ser o padrão registrado no router.
func Metrics(observer RequestObserver, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if observer == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			observer.ObserveRequest(route, lrw.statusCode, time.Since(start))
		})
	}
}
