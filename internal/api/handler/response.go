package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// principal devolve o usuário autenticado ou escreve AUTH_006
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return p, ok
}

// fail registra o erro e responde com o código correspondente
func fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	entry := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(apiErrors.CodeFor(err)) >= http.StatusInternalServerError {
		entry.Error("handler: " + msg)
	} else {
		entry.Debug("handler: " + msg)
	}
	apiErrors.WriteDomainError(w, err)
}
