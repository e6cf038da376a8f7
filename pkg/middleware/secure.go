package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders aplica os cabeçalhos de segurança padrão. Em desenvolvimento o
// HSTS fica desligado para permitir http://localhost.
func SecureHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
		IsDevelopment:         isDevelopment,
	})
	return sec.Handler
}
