package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/authenticating"
)

func Signup(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignupRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Signup(r.Context(), req)
		if err != nil {
			fail(w, r, err, "erro no cadastro de usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Login(r.Context(), req)
		if err != nil {
			fail(w, r, err, "erro no login")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetMe retorna o perfil do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), p.UserID)
		if err != nil {
			fail(w, r, err, "erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
