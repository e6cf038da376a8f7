package cadastro

import (
	"context"
	"errors"
	"testing"

	"github.com/vfg2006/hangar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hangar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type bumpCounter struct {
	calls int
	err   error
}

func (b *bumpCounter) Bump(context.Context) error {
	b.calls++
	return b.err
}

type fixture struct {
	service  *Service
	tiers    *mocks.MockTierRepository
	clientes *mocks.MockClienteRepository
	projetos *mocks.MockProjetoRepository
	impostos *mocks.MockImpostoRepository
	regs     *mocks.MockRegistroRepository
	bumps    *bumpCounter
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		tiers:    mocks.NewMockTierRepository(ctrl),
		clientes: mocks.NewMockClienteRepository(ctrl),
		projetos: mocks.NewMockProjetoRepository(ctrl),
		impostos: mocks.NewMockImpostoRepository(ctrl),
		regs:     mocks.NewMockRegistroRepository(ctrl),
		bumps:    &bumpCounter{},
	}
	f.service = NewService(Repositories{
		Tiers:     f.tiers,
		Clientes:  f.clientes,
		Projetos:  f.projetos,
		Impostos:  f.impostos,
		Registros: f.regs,
	}, f.bumps)
	f.service.newID = func() (string, error) { return "novo-id", nil }

	return f
}

var (
	admin   = domain.Principal{UserID: "admin", Role: domain.RoleAdmin}
	usuario = domain.Principal{UserID: "u1", Role: domain.RoleUser, TierIDs: domain.IDList{"t1"}}
)

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

var errBanco = errors.New("conexão perdida")
