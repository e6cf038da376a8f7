package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/authenticating"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
)

// AuditExporter gera o CSV do log de auditoria
type AuditExporter interface {
	ExportAuditCSV(ctx context.Context, p domain.Principal, filter domain.AuditFilter) (*bytes.Buffer, error)
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		users, err := service.ListUsers(r.Context(), p)
		if err != nil {
			fail(w, r, err, "erro ao listar usuários")
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}

func ApproveUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.ApproveUser(r.Context(), p, userID); err != nil {
			fail(w, r, err, "erro ao aprovar usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"ok": true})
	}
}

func PromoteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.PromoteUser(r.Context(), p, userID); err != nil {
			fail(w, r, err, "erro ao promover usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"ok": true})
	}
}

func SetUserTiers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req domain.SetUserTiersRequest
		if !decodeBody(w, r, &req) {
			return
		}

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.SetUserTiers(r.Context(), p, userID, req); err != nil {
			fail(w, r, err, "erro ao definir tiers do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"ok": true})
	}
}

// ExportAudit devolve o log de auditoria em CSV, opcionalmente entre from e to (YYYY-MM-DD)
func ExportAudit(service AuditExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		var filter domain.AuditFilter
		var err error
		if filter.From, err = parseDay(query.Get("from")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido, use YYYY-MM-DD", nil)
			return
		}
		if filter.To, err = parseDay(query.Get("to")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido, use YYYY-MM-DD", nil)
			return
		}
		if filter.To != nil {
			// to é inclusivo
			end := filter.To.Add(24*time.Hour - time.Nanosecond)
			filter.To = &end
		}

		buf, err := service.ExportAuditCSV(r.Context(), p, filter)
		if err != nil {
			fail(w, r, err, "erro ao exportar auditoria")
			return
		}

		filename := fmt.Sprintf("auditoria-%s.csv", time.Now().UTC().Format("20060102"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
