package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
	"github.com/vfg2006/hangar-api/pkg/log"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"
	contextKeyUserSlot  contextKey = "user_slot"
)

// PrincipalLoader valida o token e carrega o usuário da requisição
type PrincipalLoader interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	LoadPrincipal(ctx context.Context, claims *domain.Claims) (domain.Principal, error)
}

var publicPaths = map[string]bool{
	"/v1/auth/signup": true,
	"/v1/auth/login":  true,
	"/healthcheck":    true,
	"/metrics":        true,
}

// WithPrincipal também preenche o slot aberto pela LoggingMiddleware, que roda
// antes da autenticação e precisa do usuário para o log da requisição.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	if slot, ok := ctx.Value(contextKeyUserSlot).(*string); ok {
		*slot = p.UserID
	}
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// PrincipalFromContext devolve o usuário autenticado pela AuthMiddleware
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(domain.Principal)
	return p, ok
}

func AuthMiddleware(loader PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := loader.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteDomainError(w, err)
				return
			}

			principal, err := loader.LoadPrincipal(r.Context(), claims)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("middleware: falha ao carregar usuário do token")
				apiErrors.WriteDomainError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
