package handler

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/exporting"
)

type fakeExporter struct {
	tierIDs domain.IDList
	filter  domain.AuditFilter
}

func (f *fakeExporter) ExportExcel(_ context.Context, _ domain.Principal, tierIDs domain.IDList) (*bytes.Buffer, error) {
	f.tierIDs = tierIDs
	return bytes.NewBufferString("xlsx"), nil
}

func (f *fakeExporter) ExportAuditCSV(_ context.Context, p domain.Principal, filter domain.AuditFilter) (*bytes.Buffer, error) {
	f.filter = filter
	return bytes.NewBufferString("id,created_at\n"), nil
}

func TestExportExcel(t *testing.T) {
	exporter := &fakeExporter{}

	rec := serve(Export(exporter), &usuario, http.MethodGet, "/v1/export/excel?tier_id=t1,t2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporting.ExcelContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "xlsx", rec.Body.String())
	assert.Equal(t, domain.IDList{"t1", "t2"}, exporter.tierIDs)
}

func TestExportAudit(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFrom   *time.Time
		wantTo     *time.Time
	}{
		{name: "sem período", wantStatus: http.StatusOK},
		{
			name:       "to é inclusivo",
			query:      "?from=2025-01-01&to=2025-01-31",
			wantStatus: http.StatusOK,
			wantFrom:   ptrTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantTo:     ptrTime(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)),
		},
		{name: "data inválida", query: "?from=01/01/2025", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := &fakeExporter{}

			rec := serve(Admin(nil, exporter), &admin, http.MethodGet, "/v1/admin/audit/export"+tt.query, "")

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantFrom, exporter.filter.From)
			assert.Equal(t, tt.wantTo, exporter.filter.To)
		})
	}
}

func TestExportAuditRequiresAdmin(t *testing.T) {
	rec := serve(Admin(nil, &fakeExporter{}), &usuario, http.MethodGet, "/v1/admin/audit/export", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func ptrTime(t time.Time) *time.Time { return &t }
