package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/exporting"
)

type ExcelExporter interface {
	ExportExcel(ctx context.Context, p domain.Principal, tierIDs domain.IDList) (*bytes.Buffer, error)
}

// ExportExcel devolve a planilha consolidada; ?tier_id= restringe os tiers exportados
func ExportExcel(service ExcelExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		buf, err := service.ExportExcel(r.Context(), p, domain.ParseIDList(r.URL.Query(), "tier_id"))
		if err != nil {
			fail(w, r, err, "erro ao gerar planilha")
			return
		}

		filename := fmt.Sprintf("hangar-%s.xlsx", time.Now().UTC().Format("20060102"))
		w.Header().Set("Content-Type", exporting.ExcelContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
