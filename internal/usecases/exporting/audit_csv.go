package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var auditHeader = []string{"id", "created_at", "actor_id", "actor_email", "target_user_id", "action", "metadata"}

// ExportAuditCSV exporta o log de auditoria do período em CSV. Restrito a administradores.
func (s *Service) ExportAuditCSV(ctx context.Context, p domain.Principal, filter domain.AuditFilter) (*bytes.Buffer, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}

	logs, err := s.auditRepo.ListAuditLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(auditHeader); err != nil {
		return nil, err
	}

	for _, entry := range logs {
		var target, metadata string
		if entry.TargetUserID != nil {
			target = *entry.TargetUserID
		}
		if entry.Metadata != nil {
			raw, err := json.Marshal(entry.Metadata)
			if err != nil {
				return nil, err
			}
			metadata = string(raw)
		}

		record := []string{
			entry.ID,
			entry.CreatedAt.UTC().Format(time.RFC3339),
			entry.ActorID,
			entry.ActorEmail,
			target,
			string(entry.Action),
			metadata,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf, w.Error()
}
