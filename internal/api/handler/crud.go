package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/hangar-api/internal/domain"
)

// Os cadastros seguem o mesmo formato: o handler só resolve o usuário, lê id
// e corpo e delega ao serviço, que faz a validação e o controle de acesso.

func listHandler[T any](msg string, list func(r *http.Request, p domain.Principal) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		items, err := list(r, p)
		if err != nil {
			fail(w, r, err, msg)
			return
		}
		if items == nil {
			items = []T{}
		}

		writeJSON(w, r, http.StatusOK, items)
	}
}

func getHandler[T any](msg string, get func(ctx context.Context, p domain.Principal, id string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		item, err := get(r.Context(), p, httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			fail(w, r, err, msg)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	}
}

func createHandler[I, T any](msg string, create func(ctx context.Context, p domain.Principal, input I) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var input I
		if !decodeBody(w, r, &input) {
			return
		}

		item, err := create(r.Context(), p, input)
		if err != nil {
			fail(w, r, err, msg)
			return
		}

		writeJSON(w, r, http.StatusCreated, item)
	}
}

func updateHandler[I, T any](msg string, update func(ctx context.Context, p domain.Principal, id string, input I) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var input I
		if !decodeBody(w, r, &input) {
			return
		}

		item, err := update(r.Context(), p, httprouter.ParamsFromContext(r.Context()).ByName("id"), input)
		if err != nil {
			fail(w, r, err, msg)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	}
}

func deleteHandler(msg string, remove func(ctx context.Context, p domain.Principal, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		if err := remove(r.Context(), p, httprouter.ParamsFromContext(r.Context()).ByName("id")); err != nil {
			fail(w, r, err, msg)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
