//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const auditLogsTable = "audit_logs"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AuditLogRepository interface {
	ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	conn postgres.Conn
}

func NewAuditLogRepository(conn postgres.Conn) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

func insertAuditLog(ctx context.Context, q postgres.Queryer, audit *domain.AuditLog) error {
	if audit == nil {
		return nil
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}

	var metadata any
	if audit.Metadata != nil {
		raw, err := json.Marshal(audit.Metadata)
		if err != nil {
			return err
		}
		metadata = string(raw)
	}

	query, args, err := psql.
		Insert(auditLogsTable).
		Columns("id", "actor_id", "target_user_id", "action", "metadata", "created_at").
		Values(audit.ID, audit.ActorID, audit.TargetUserID, audit.Action, metadata, audit.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, query, args...)
	return err
}

func (r *auditLogRepository) ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error) {
	builder := psql.
		Select("a.id", "a.actor_id", "u.email", "a.target_user_id", "a.action", "a.metadata", "a.created_at").
		From(auditLogsTable + " a").
		Join(usersTable + " u ON u.id = a.actor_id").
		OrderBy("a.created_at DESC")

	if filter.From != nil {
		builder = builder.Where("a.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		builder = builder.Where("a.created_at <= ?", *filter.To)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar auditoria")
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var a domain.AuditLog
		var metadata []byte
		if err := rows.Scan(&a.ID, &a.ActorID, &a.ActorEmail, &a.TargetUserID, &a.Action, &metadata, &a.CreatedAt); err != nil {
			return nil, translateError(err, "ler auditoria")
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
				return nil, translateError(err, "ler metadados da auditoria")
			}
		}
		logs = append(logs, a)
	}

	return logs, rows.Err()
}
