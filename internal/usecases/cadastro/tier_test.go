package cadastro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateTier(t *testing.T) {
	tests := []struct {
		name      string
		principal domain.Principal
		input     domain.TierInput
		setup     func(f *fixture)
		wantErr   error
	}{
		{
			name:      "admin cria tier",
			principal: admin,
			input:     domain.TierInput{Nome: strPtr("  Ouro "), MarginMeta: floatPtr(30)},
			setup: func(f *fixture) {
				f.tiers.EXPECT().CreateTier(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tier *domain.Tier) error {
						assert.Equal(t, "novo-id", tier.ID)
						assert.Equal(t, "Ouro", tier.Nome)
						return nil
					})
			},
		},
		{
			name:      "usuário comum não cria tier",
			principal: usuario,
			input:     domain.TierInput{Nome: strPtr("Ouro")},
			setup:     func(*fixture) {},
			wantErr:   domain.ErrForbidden,
		},
		{
			name:      "nome obrigatório",
			principal: admin,
			input:     domain.TierInput{Nome: strPtr("   ")},
			setup:     func(*fixture) {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "meta fora de 0..100",
			principal: admin,
			input:     domain.TierInput{Nome: strPtr("Ouro"), MarginMeta: floatPtr(120)},
			setup:     func(*fixture) {},
			wantErr:   domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			tier, err := f.service.CreateTier(context.Background(), tt.principal, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "novo-id", tier.ID)
		})
	}
}

func TestService_GetTier_ForaDoEscopo(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetTier(context.Background(), usuario, "t2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_UpdateTier_MetaInvalidaCache(t *testing.T) {
	f := newFixture(t)
	f.tiers.EXPECT().GetTier(gomock.Any(), "t1").Return(&domain.Tier{ID: "t1", Nome: "Ouro"}, nil)
	f.tiers.EXPECT().UpdateTier(gomock.Any(), gomock.Any()).Return(nil)

	tier, err := f.service.UpdateTier(context.Background(), admin, "t1", domain.TierInput{MarginMeta: floatPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, 15.0, *tier.MarginMeta)
	assert.Equal(t, 1, f.bumps.calls)
}

func TestService_ListTiers_UsaEscopoDoUsuario(t *testing.T) {
	f := newFixture(t)
	f.tiers.EXPECT().
		ListTiers(gomock.Any(), domain.Scope{TierIDs: domain.IDList{"t1"}}).
		Return([]domain.Tier{{ID: "t1"}}, nil)

	tiers, err := f.service.ListTiers(context.Background(), usuario)
	require.NoError(t, err)
	assert.Len(t, tiers, 1)
}
