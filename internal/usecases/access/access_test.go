package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/hangar-api/internal/domain"
)

func TestNarrowReport(t *testing.T) {
	admin := domain.Principal{UserID: "u1", Role: domain.RoleAdmin}
	user := domain.Principal{UserID: "u2", Role: domain.RoleUser, TierIDs: domain.IDList{"t1", "t2"}}
	semTiers := domain.Principal{UserID: "u3", Role: domain.RoleUser}

	tests := []struct {
		name      string
		principal domain.Principal
		filter    domain.ReportFilter
		wantTiers domain.IDList
		wantOK    bool
	}{
		{
			name:      "admin mantém o filtro",
			principal: admin,
			filter:    domain.ReportFilter{Ano: 2024, TierIDs: domain.IDList{"t9"}},
			wantTiers: domain.IDList{"t9"},
			wantOK:    true,
		},
		{
			name:      "admin sem filtro vê tudo",
			principal: admin,
			filter:    domain.ReportFilter{Ano: 2024},
			wantTiers: nil,
			wantOK:    true,
		},
		{
			name:      "usuário sem filtro recebe seus tiers",
			principal: user,
			filter:    domain.ReportFilter{Ano: 2024},
			wantTiers: domain.IDList{"t1", "t2"},
			wantOK:    true,
		},
		{
			name:      "usuário com filtro é restringido à interseção",
			principal: user,
			filter:    domain.ReportFilter{Ano: 2024, TierIDs: domain.IDList{"t2", "t3"}},
			wantTiers: domain.IDList{"t2"},
			wantOK:    true,
		},
		{
			name:      "usuário pedindo apenas tier não autorizado",
			principal: user,
			filter:    domain.ReportFilter{Ano: 2024, TierIDs: domain.IDList{"t3"}},
			wantTiers: domain.IDList{},
			wantOK:    false,
		},
		{
			name:      "usuário sem tiers não vê nada",
			principal: semTiers,
			filter:    domain.ReportFilter{Ano: 2024},
			wantTiers: nil,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NarrowReport(tt.principal, tt.filter)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTiers, got.TierIDs)
			assert.Equal(t, tt.filter.Ano, got.Ano)
		})
	}
}

func TestCheckTier(t *testing.T) {
	user := domain.Principal{Role: domain.RoleUser, TierIDs: domain.IDList{"t1"}}

	assert.NoError(t, CheckTier(user, "t1"))
	assert.ErrorIs(t, CheckTier(user, "t2"), domain.ErrForbidden)
	assert.NoError(t, CheckTier(domain.Principal{Role: domain.RoleAdmin}, "qualquer"))
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(domain.Principal{Role: domain.RoleAdmin}))
	assert.ErrorIs(t, RequireAdmin(domain.Principal{Role: domain.RoleUser}), domain.ErrForbidden)
}

func TestScopeFor_NaoCompartilhaSlice(t *testing.T) {
	user := domain.Principal{Role: domain.RoleUser, TierIDs: domain.IDList{"t1"}}
	scope := ScopeFor(user)
	scope.TierIDs[0] = "x"
	assert.Equal(t, "t1", user.TierIDs[0])
}
