package exporting

import (
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_ExportAuditCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(nil, nil, auditRepo)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	target := "u9"
	auditRepo.EXPECT().ListAuditLogs(gomock.Any(), domain.AuditFilter{From: &from}).Return([]domain.AuditLog{
		{
			ID: "a1", ActorID: "adm", ActorEmail: "adm@example.com", TargetUserID: &target,
			Action: domain.AuditSetUserTiers, Metadata: map[string]any{"tier_ids": []string{"t1"}},
			CreatedAt: time.Date(2024, time.February, 3, 10, 0, 0, 0, time.UTC),
		},
		{ID: "a2", ActorID: "adm", Action: domain.AuditApproveUser, CreatedAt: from},
	}, nil)

	buf, err := service.ExportAuditCSV(context.Background(), domain.Principal{Role: domain.RoleAdmin}, domain.AuditFilter{From: &from})
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, auditHeader, records[0])
	assert.Equal(t, []string{"a1", "2024-02-03T10:00:00Z", "adm", "adm@example.com", "u9", "set_user_tiers", `{"tier_ids":["t1"]}`}, records[1])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "", records[2][6])
}

func TestService_ExportAuditCSV_SomenteAdmin(t *testing.T) {
	service := NewService(nil, nil, nil)

	_, err := service.ExportAuditCSV(context.Background(), domain.Principal{Role: domain.RoleUser}, domain.AuditFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
