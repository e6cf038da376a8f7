package cadastro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProjeto_StatusPadraoAtivo(t *testing.T) {
	f := newFixture(t)
	f.clientes.EXPECT().GetCliente(gomock.Any(), "c1").Return(&domain.Cliente{ID: "c1", TierID: "t1"}, nil)
	f.projetos.EXPECT().CreateProjeto(gomock.Any(), gomock.Any()).Return(nil)

	projeto, err := f.service.CreateProjeto(context.Background(), admin, domain.ProjetoInput{
		ClienteID: strPtr("c1"),
		Nome:      strPtr("Site"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjetoStatusAtivo, projeto.Status)
}

func TestService_CreateProjeto_StatusInvalido(t *testing.T) {
	f := newFixture(t)
	status := domain.ProjetoStatus("arquivado")

	_, err := f.service.CreateProjeto(context.Background(), admin, domain.ProjetoInput{
		ClienteID: strPtr("c1"),
		Nome:      strPtr("Site"),
		Status:    &status,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetProjeto_ChecaTier(t *testing.T) {
	f := newFixture(t)
	f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p2").Return("t2", nil)

	_, err := f.service.GetProjeto(context.Background(), usuario, "p2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_DeleteProjeto(t *testing.T) {
	f := newFixture(t)
	f.projetos.EXPECT().DeleteProjeto(gomock.Any(), "p1").Return(nil)

	require.NoError(t, f.service.DeleteProjeto(context.Background(), admin, "p1"))
	assert.Equal(t, 1, f.bumps.calls)

	assert.ErrorIs(t, f.service.DeleteProjeto(context.Background(), usuario, "p1"), domain.ErrForbidden)
}
