package cadastro

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateImposto(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.ImpostoInput
		withRepo bool
		wantErr  error
		validate func(t *testing.T, imposto *domain.Imposto)
	}{
		{
			name: "vigência aberta",
			input: domain.ImpostoInput{
				ProjetoID:      strPtr("p1"),
				Percentual:     floatPtr(7.5),
				VigenciaInicio: strPtr("2024-01-01"),
			},
			withRepo: true,
			validate: func(t *testing.T, imposto *domain.Imposto) {
				assert.True(t, imposto.Ativo)
				assert.Nil(t, imposto.VigenciaFim)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), imposto.VigenciaInicio)
			},
		},
		{
			name: "fim anterior ao início",
			input: domain.ImpostoInput{
				ProjetoID:      strPtr("p1"),
				Percentual:     floatPtr(7.5),
				VigenciaInicio: strPtr("2024-06-01"),
				VigenciaFim:    strPtr("2024-01-01"),
			},
			withRepo: false,
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name: "data mal formatada",
			input: domain.ImpostoInput{
				ProjetoID:      strPtr("p1"),
				Percentual:     floatPtr(7.5),
				VigenciaInicio: strPtr("01/06/2024"),
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "percentual acima de 100",
			input: domain.ImpostoInput{
				ProjetoID:      strPtr("p1"),
				Percentual:     floatPtr(101),
				VigenciaInicio: strPtr("2024-01-01"),
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.projetos.EXPECT().GetProjeto(gomock.Any(), "p1").Return(&domain.Projeto{ID: "p1"}, nil).AnyTimes()
			if tt.withRepo {
				f.impostos.EXPECT().CreateImposto(gomock.Any(), gomock.Any()).Return(nil)
			}

			imposto, err := f.service.CreateImposto(context.Background(), admin, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, imposto)
		})
	}
}

func TestService_RecalcularImposto(t *testing.T) {
	f := newFixture(t)
	f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(&domain.Imposto{ID: "i1", ProjetoID: "p1", Percentual: 10}, nil)
	f.regs.EXPECT().
		RecalcularReceitas(gomock.Any(), "i1", []string{"r1", "r2"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ids []string, calc repository.CalcLiquida) (int, error) {
			liquida, err := calc(1000)
			require.NoError(t, err)
			assert.Equal(t, 900.0, liquida)

			_, err = calc(-1)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			return len(ids), nil
		})

	res, err := f.service.RecalcularImposto(context.Background(), admin, "i1", domain.RecalcularInput{Registros: []string{"r1", "r2"}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Atualizados)
	assert.Equal(t, 1, f.bumps.calls)
}

func TestService_RecalcularImposto_ListaVazia(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.RecalcularImposto(context.Background(), admin, "i1", domain.RecalcularInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_UpdateImposto_NaoTrocaProjeto(t *testing.T) {
	f := newFixture(t)
	f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(&domain.Imposto{ID: "i1", ProjetoID: "p1"}, nil)

	_, err := f.service.UpdateImposto(context.Background(), admin, "i1", domain.ImpostoInput{ProjetoID: strPtr("p2")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
