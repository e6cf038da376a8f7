package handler

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/api/handler/router"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/middleware"
)

var (
	admin   = domain.Principal{UserID: "admin", Role: domain.RoleAdmin}
	usuario = domain.Principal{UserID: "u1", Role: domain.RoleUser, TierIDs: domain.IDList{"t1"}}
)

func init() {
	log.SetupTestLogger()
}

// serve executa a requisição pelas rotas informadas como se a AuthMiddleware
// já tivesse carregado p. p nil simula requisição anônima.
func serve(routes []router.Route, p *domain.Principal, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if p != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *p))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	var body apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

type noopInvalidator struct{}

func (noopInvalidator) Bump(context.Context) error { return nil }

var errBanco = fmt.Errorf("conexão perdida")
