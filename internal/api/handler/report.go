package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
)

// parseReportFilter lê ano, tier_id, cliente_id, projeto_id e status da query
func parseReportFilter(r *http.Request, now time.Time) (domain.ReportFilter, error) {
	query := r.URL.Query()
	filter := domain.ReportFilter{
		Ano:        now.Year(),
		TierIDs:    domain.ParseIDList(query, "tier_id"),
		ClienteIDs: domain.ParseIDList(query, "cliente_id"),
		ProjetoIDs: domain.ParseIDList(query, "projeto_id"),
	}

	if raw := query.Get("ano"); raw != "" {
		ano, err := strconv.Atoi(raw)
		if err != nil || ano < 1 || ano > 9999 {
			return filter, fmt.Errorf("%w: ano inválido %q", domain.ErrInvalidInput, raw)
		}
		filter.Ano = ano
	}

	status, err := domain.ParseStatusFilter(query.Get("status"))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	return filter, nil
}

func reportHandler[T any](msg string, build func(r *http.Request, p domain.Principal, filter domain.ReportFilter) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		filter, err := parseReportFilter(r, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := build(r, p, filter)
		if err != nil {
			fail(w, r, err, msg)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("erro ao montar dashboard", func(r *http.Request, p domain.Principal, filter domain.ReportFilter) (*domain.Dashboard, error) {
		return service.Dashboard(r.Context(), p, filter)
	})
}

func GetGoals(service reporting.Reporter) http.HandlerFunc {
	return reportHandler("erro ao montar metas", func(r *http.Request, p domain.Principal, filter domain.ReportFilter) (*domain.Goals, error) {
		return service.Goals(r.Context(), p, filter)
	})
}
