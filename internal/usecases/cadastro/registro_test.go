package cadastro

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateRegistro(t *testing.T) {
	imposto := &domain.Imposto{ID: "i1", ProjetoID: "p1", Percentual: 7.5}

	tests := []struct {
		name     string
		input    domain.RegistroInput
		setup    func(f *fixture)
		wantErr  error
		validate func(t *testing.T, r *domain.RegistroMensal)
	}{
		{
			name: "calcula líquida pelo imposto e normaliza o mês",
			input: domain.RegistroInput{
				ProjetoID:    strPtr("p1"),
				MesRef:       strPtr("2024-03-17"),
				ReceitaBruta: floatPtr(333.33),
				ImpostoID:    strPtr("i1"),
			},
			setup: func(f *fixture) {
				f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
				f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(imposto, nil)
				f.regs.EXPECT().CreateRegistro(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, r *domain.RegistroMensal) {
				assert.Equal(t, 308.33, r.ReceitaLiquida)
				assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), r.MesRef)
				assert.Equal(t, domain.RegistroPlanejado, r.Status)
			},
		},
		{
			name: "líquida explícita prevalece",
			input: domain.RegistroInput{
				ProjetoID:      strPtr("p1"),
				MesRef:         strPtr("2024-03"),
				ReceitaBruta:   floatPtr(1000),
				ImpostoID:      strPtr("i1"),
				ReceitaLiquida: floatPtr(950),
			},
			setup: func(f *fixture) {
				f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
				f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(imposto, nil)
				f.regs.EXPECT().CreateRegistro(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, r *domain.RegistroMensal) {
				assert.Equal(t, 950.0, r.ReceitaLiquida)
			},
		},
		{
			name: "projeto de outro tier",
			input: domain.RegistroInput{
				ProjetoID:    strPtr("p2"),
				MesRef:       strPtr("2024-03"),
				ReceitaBruta: floatPtr(1000),
				ImpostoID:    strPtr("i1"),
			},
			setup: func(f *fixture) {
				f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p2").Return("t2", nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "imposto de outro projeto",
			input: domain.RegistroInput{
				ProjetoID:    strPtr("p3"),
				MesRef:       strPtr("2024-03"),
				ReceitaBruta: floatPtr(1000),
				ImpostoID:    strPtr("i1"),
			},
			setup: func(f *fixture) {
				f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p3").Return("t1", nil)
				f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(imposto, nil)
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "mês inválido",
			input: domain.RegistroInput{
				ProjetoID:    strPtr("p1"),
				MesRef:       strPtr("março"),
				ReceitaBruta: floatPtr(1000),
				ImpostoID:    strPtr("i1"),
			},
			setup:   func(*fixture) {},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "receita bruta negativa",
			input: domain.RegistroInput{
				ProjetoID:    strPtr("p1"),
				MesRef:       strPtr("2024-03"),
				ReceitaBruta: floatPtr(-1),
				ImpostoID:    strPtr("i1"),
			},
			setup:   func(*fixture) {},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			r, err := f.service.CreateRegistro(context.Background(), usuario, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.bumps.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "novo-id", r.ID)
			assert.Equal(t, 1, f.bumps.calls)
			tt.validate(t, r)
		})
	}
}

func TestService_UpdateRegistro(t *testing.T) {
	existente := func() *domain.RegistroMensal {
		return &domain.RegistroMensal{
			ID:             "r1",
			ProjetoID:      "p1",
			MesRef:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			ReceitaBruta:   1000,
			ImpostoID:      "i1",
			ReceitaLiquida: 900,
			Status:         domain.RegistroPlanejado,
		}
	}

	t.Run("nova receita bruta recalcula a líquida", func(t *testing.T) {
		f := newFixture(t)
		f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(existente(), nil)
		f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
		f.impostos.EXPECT().GetImposto(gomock.Any(), "i1").Return(&domain.Imposto{ID: "i1", ProjetoID: "p1", Percentual: 10}, nil)
		f.regs.EXPECT().UpdateRegistro(gomock.Any(), gomock.Any()).Return(nil)

		r, err := f.service.UpdateRegistro(context.Background(), usuario, "r1", domain.RegistroInput{ReceitaBruta: floatPtr(2000)})
		require.NoError(t, err)
		assert.Equal(t, 1800.0, r.ReceitaLiquida)
	})

	t.Run("mudar só o status não consulta o imposto", func(t *testing.T) {
		f := newFixture(t)
		realizado := domain.RegistroRealizado
		f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(existente(), nil)
		f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
		f.regs.EXPECT().UpdateRegistro(gomock.Any(), gomock.Any()).Return(nil)

		r, err := f.service.UpdateRegistro(context.Background(), usuario, "r1", domain.RegistroInput{Status: &realizado})
		require.NoError(t, err)
		assert.Equal(t, domain.RegistroRealizado, r.Status)
		assert.Equal(t, 900.0, r.ReceitaLiquida)
	})

	t.Run("imposto de outro projeto é recusado mesmo com líquida explícita", func(t *testing.T) {
		f := newFixture(t)
		f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(existente(), nil)
		f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
		f.impostos.EXPECT().GetImposto(gomock.Any(), "i-outro").Return(&domain.Imposto{ID: "i-outro", ProjetoID: "p2", Percentual: 5}, nil)

		_, err := f.service.UpdateRegistro(context.Background(), usuario, "r1", domain.RegistroInput{
			ImpostoID:      strPtr("i-outro"),
			ReceitaLiquida: floatPtr(850),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, f.bumps.calls)
	})

	t.Run("troca de imposto do mesmo projeto recalcula com o novo percentual", func(t *testing.T) {
		f := newFixture(t)
		f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(existente(), nil)
		f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
		f.impostos.EXPECT().GetImposto(gomock.Any(), "i2").Return(&domain.Imposto{ID: "i2", ProjetoID: "p1", Percentual: 20}, nil)
		f.regs.EXPECT().UpdateRegistro(gomock.Any(), gomock.Any()).Return(nil)

		r, err := f.service.UpdateRegistro(context.Background(), usuario, "r1", domain.RegistroInput{ImpostoID: strPtr("i2")})
		require.NoError(t, err)
		assert.Equal(t, "i2", r.ImpostoID)
		assert.Equal(t, 800.0, r.ReceitaLiquida)
	})

	t.Run("projeto não pode ser trocado", func(t *testing.T) {
		f := newFixture(t)
		f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(existente(), nil)
		f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)

		_, err := f.service.UpdateRegistro(context.Background(), usuario, "r1", domain.RegistroInput{ProjetoID: strPtr("p9")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestService_ListRegistros(t *testing.T) {
	f := newFixture(t)
	marco := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.regs.EXPECT().ListRegistros(gomock.Any(), domain.RegistroListFilter{
		ProjetoID: "p1",
		MesRef:    &marco,
		Status:    domain.RegistroRealizado,
		Scope:     domain.Scope{TierIDs: domain.IDList{"t1"}},
	}).Return([]domain.RegistroMensal{{ID: "r1"}}, nil)

	regs, err := f.service.ListRegistros(context.Background(), usuario, RegistroQuery{ProjetoID: "p1", MesRef: "2024-03", Status: "realizado"})
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	_, err = f.service.ListRegistros(context.Background(), usuario, RegistroQuery{Status: "pipeline"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_DeleteRegistro_ErroDoBanco(t *testing.T) {
	f := newFixture(t)
	f.regs.EXPECT().GetRegistro(gomock.Any(), "r1").Return(&domain.RegistroMensal{ID: "r1", ProjetoID: "p1"}, nil)
	f.projetos.EXPECT().GetProjetoTierID(gomock.Any(), "p1").Return("t1", nil)
	f.regs.EXPECT().DeleteRegistro(gomock.Any(), "r1").Return(errBanco)

	err := f.service.DeleteRegistro(context.Background(), usuario, "r1")
	assert.ErrorIs(t, err, errBanco)
	assert.Zero(t, f.bumps.calls)
}
