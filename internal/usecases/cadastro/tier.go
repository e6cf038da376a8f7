package cadastro

import (
	"context"
	"strings"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/log"
)

func (s *Service) ListTiers(ctx context.Context, p domain.Principal) ([]domain.Tier, error) {
	return s.tierRepo.ListTiers(ctx, access.ScopeFor(p))
}

func (s *Service) GetTier(ctx context.Context, p domain.Principal, id string) (*domain.Tier, error) {
	if err := access.CheckTier(p, id); err != nil {
		return nil, err
	}
	return s.tierRepo.GetTier(ctx, id)
}

func (s *Service) CreateTier(ctx context.Context, p domain.Principal, input domain.TierInput) (*domain.Tier, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := required("nome", !blank(input.Nome)); err != nil {
		return nil, err
	}

	id, err := s.id()
	if err != nil {
		return nil, err
	}

	tier := &domain.Tier{
		ID:         id,
		Nome:       strings.TrimSpace(*input.Nome),
		MarginMeta: input.MarginMeta,
	}
	if err := s.tierRepo.CreateTier(ctx, tier); err != nil {
		return nil, err
	}

	log.ForContext(ctx).Infof("cadastro: tier %s criado por %s", tier.ID, p.UserID)
	return tier, nil
}

func (s *Service) UpdateTier(ctx context.Context, p domain.Principal, id string, input domain.TierInput) (*domain.Tier, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	tier, err := s.tierRepo.GetTier(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		if err := required("nome", !blank(input.Nome)); err != nil {
			return nil, err
		}
		tier.Nome = strings.TrimSpace(*input.Nome)
	}
	metaChanged := input.MarginMeta != nil
	if metaChanged {
		tier.MarginMeta = input.MarginMeta
	}

	if err := s.tierRepo.UpdateTier(ctx, tier); err != nil {
		return nil, err
	}
	if metaChanged {
		s.invalidateReports(ctx)
	}

	return tier, nil
}

func (s *Service) DeleteTier(ctx context.Context, p domain.Principal, id string) error {
	if err := access.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.tierRepo.DeleteTier(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	log.ForContext(ctx).Infof("cadastro: tier %s removido por %s", id, p.UserID)
	return nil
}
