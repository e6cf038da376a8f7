package cadastro

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetCliente(t *testing.T) {
	tests := []struct {
		name    string
		cliente *domain.Cliente
		repoErr error
		wantErr error
	}{
		{name: "cliente do tier do usuário", cliente: &domain.Cliente{ID: "c1", TierID: "t1"}},
		{name: "cliente de outro tier", cliente: &domain.Cliente{ID: "c2", TierID: "t2"}, wantErr: domain.ErrForbidden},
		{name: "cliente inexistente", repoErr: fmt.Errorf("erro ao buscar cliente: %w", domain.ErrNotFound), wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.clientes.EXPECT().GetCliente(gomock.Any(), gomock.Any()).Return(tt.cliente, tt.repoErr)

			got, err := f.service.GetCliente(context.Background(), usuario, "c")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cliente.ID, got.ID)
		})
	}
}

func TestService_CreateCliente_TierInexistente(t *testing.T) {
	f := newFixture(t)
	f.tiers.EXPECT().GetTier(gomock.Any(), "t9").Return(nil, fmt.Errorf("erro ao buscar tier: %w", domain.ErrNotFound))

	_, err := f.service.CreateCliente(context.Background(), admin, domain.ClienteInput{
		TierID: strPtr("t9"),
		Nome:   strPtr("Acme"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_CreateCliente_LogoInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateCliente(context.Background(), admin, domain.ClienteInput{
		TierID:  strPtr("t1"),
		Nome:    strPtr("Acme"),
		LogoURL: strPtr("não é url"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_UpdateCliente_TrocaDeTier(t *testing.T) {
	f := newFixture(t)
	f.clientes.EXPECT().GetCliente(gomock.Any(), "c1").Return(&domain.Cliente{ID: "c1", TierID: "t1", Nome: "Acme"}, nil)
	f.tiers.EXPECT().GetTier(gomock.Any(), "t2").Return(&domain.Tier{ID: "t2"}, nil)
	f.clientes.EXPECT().UpdateCliente(gomock.Any(), gomock.Any()).Return(nil)

	cliente, err := f.service.UpdateCliente(context.Background(), admin, "c1", domain.ClienteInput{TierID: strPtr("t2")})
	require.NoError(t, err)
	assert.Equal(t, "t2", cliente.TierID)
	assert.Equal(t, "Acme", cliente.Nome)
	assert.Equal(t, 1, f.bumps.calls)
}
