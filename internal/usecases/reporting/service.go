package reporting

import (
	"context"

	"github.com/vfg2006/hangar-api/infrastructure/cache"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/log"
)

// Reporter monta os relatórios financeiros respeitando o escopo do usuário
type Reporter interface {
	Dashboard(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.Dashboard, error)
	Goals(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.Goals, error)
}

// ReportCache guarda relatórios prontos por filtro
type ReportCache interface {
	FetchJSON(ctx context.Context, dest any, loader cache.Loader, parts ...string) error
}

type Service struct {
	registroRepo repository.RegistroRepository
	cache        ReportCache
}

func NewService(registroRepo repository.RegistroRepository, reportCache ReportCache) *Service {
	return &Service{
		registroRepo: registroRepo,
		cache:        reportCache,
	}
}

func (s *Service) Dashboard(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.Dashboard, error) {
	scoped, ok := access.NarrowReport(principal, filter)
	if !ok {
		log.ForContext(ctx).Debugf("reporting: usuário %s sem tiers visíveis para o filtro, dashboard vazio", principal.UserID)
		return BuildDashboard(filter.Ano, filter.Status, nil)
	}

	var dashboard domain.Dashboard
	err := s.cache.FetchJSON(ctx, &dashboard, func(ctx context.Context) (any, error) {
		registros, err := s.registroRepo.ListDetalhados(ctx, scoped)
		if err != nil {
			return nil, err
		}
		return BuildDashboard(scoped.Ano, scoped.Status, registros)
	}, "dashboard", scoped.CacheKey())
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: erro ao montar dashboard")
		return nil, err
	}

	return &dashboard, nil
}

func (s *Service) Goals(ctx context.Context, principal domain.Principal, filter domain.ReportFilter) (*domain.Goals, error) {
	scoped, ok := access.NarrowReport(principal, filter)
	if !ok {
		return BuildGoals(filter.Ano, filter.Status, nil)
	}

	var goals domain.Goals
	err := s.cache.FetchJSON(ctx, &goals, func(ctx context.Context) (any, error) {
		registros, err := s.registroRepo.ListDetalhados(ctx, scoped)
		if err != nil {
			return nil, err
		}
		return BuildGoals(scoped.Ano, scoped.Status, registros)
	}, "goals", scoped.CacheKey())
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: erro ao montar metas")
		return nil, err
	}

	return &goals, nil
}
