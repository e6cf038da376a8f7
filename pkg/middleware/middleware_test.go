package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
)

type fakeLoader struct {
	claims    *domain.Claims
	tokenErr  error
	principal domain.Principal
	loadErr   error
}

func (f fakeLoader) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.tokenErr
}

func (f fakeLoader) LoadPrincipal(context.Context, *domain.Claims) (domain.Principal, error) {
	return f.principal, f.loadErr
}

type codedErr struct{ code string }

func (e codedErr) Error() string   { return "falha" }
func (e codedErr) APICode() string { return e.code }

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if p, ok := PrincipalFromContext(r.Context()); ok {
		w.Header().Set("X-User", p.UserID)
	}
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	valid := fakeLoader{
		claims:    &domain.Claims{UserID: "u1"},
		principal: domain.Principal{UserID: "u1", Role: domain.RoleUser},
	}

	tests := []struct {
		name       string
		loader     fakeLoader
		path       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "rota pública dispensa token", loader: fakeLoader{}, path: "/v1/auth/login", wantStatus: http.StatusOK},
		{name: "sem cabeçalho", loader: valid, path: "/v1/tiers", wantStatus: http.StatusUnauthorized},
		{name: "sem Bearer", loader: valid, path: "/v1/tiers", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "token válido", loader: valid, path: "/v1/tiers", header: "Bearer abc", wantStatus: http.StatusOK, wantUser: "u1"},
		{
			name:       "token inválido",
			loader:     fakeLoader{tokenErr: codedErr{code: apiErrors.ErrInvalidToken}},
			path:       "/v1/tiers",
			header:     "Bearer abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "usuário pendente",
			loader:     fakeLoader{claims: &domain.Claims{UserID: "u2"}, loadErr: codedErr{code: apiErrors.ErrUserDisabled}},
			path:       "/v1/tiers",
			header:     "Bearer abc",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.loader)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		wantStatus int
	}{
		{"admin", WithPrincipal(context.Background(), domain.Principal{Role: domain.RoleAdmin}), http.StatusOK},
		{"usuário comum", WithPrincipal(context.Background(), domain.Principal{Role: domain.RoleUser}), http.StatusForbidden},
		{"sem autenticação", context.Background(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	mw := Cors([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/v1/tiers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/tiers", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecureHeaders(true)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(2)(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

type observed struct {
	route  string
	status int
}

type fakeObserver struct{ calls []observed }

func (f *fakeObserver) ObserveRequest(route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{route, status})
}

func TestMetrics(t *testing.T) {
	obs := &fakeObserver{}
	handler := Metrics(obs, "GET /v1/tiers/:id")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/tiers/x", nil))
	require.Len(t, obs.calls, 1)
	assert.Equal(t, observed{"GET /v1/tiers/:id", http.StatusNotFound}, obs.calls[0])
}

func TestLoggingEPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})
	handler := LogPanicMiddleware()(LoggingMiddleware()(panicking))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tiers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestWithPrincipalFillsLoggingSlot(t *testing.T) {
	var userID string
	ctx := context.WithValue(context.Background(), contextKeyUserSlot, &userID)

	ctx = WithPrincipal(ctx, domain.Principal{UserID: "u1"})

	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "u1", userID)

	// sem slot aberto pela LoggingMiddleware
	_, ok = PrincipalFromContext(WithPrincipal(context.Background(), domain.Principal{UserID: "u2"}))
	assert.True(t, ok)
}
