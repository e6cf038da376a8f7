package cadastro

import (
	"context"
	"strings"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/log"
)

// ListClientes devolve os clientes visíveis, opcionalmente de um único tier
func (s *Service) ListClientes(ctx context.Context, p domain.Principal, tierID string) ([]domain.Cliente, error) {
	return s.clienteRepo.ListClientes(ctx, tierID, access.ScopeFor(p))
}

func (s *Service) GetCliente(ctx context.Context, p domain.Principal, id string) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.GetCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CheckTier(p, cliente.TierID); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *Service) CreateCliente(ctx context.Context, p domain.Principal, input domain.ClienteInput) (*domain.Cliente, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := required("tier_id", !blank(input.TierID)); err != nil {
		return nil, err
	}
	if err := required("nome", !blank(input.Nome)); err != nil {
		return nil, err
	}

	if _, err := s.tierRepo.GetTier(ctx, *input.TierID); err != nil {
		return nil, err
	}

	id, err := s.id()
	if err != nil {
		return nil, err
	}

	cliente := &domain.Cliente{
		ID:         id,
		TierID:     *input.TierID,
		Nome:       strings.TrimSpace(*input.Nome),
		LogoURL:    input.LogoURL,
		MarginMeta: input.MarginMeta,
	}
	if err := s.clienteRepo.CreateCliente(ctx, cliente); err != nil {
		return nil, err
	}

	log.ForContext(ctx).Infof("cadastro: cliente %s criado no tier %s", cliente.ID, cliente.TierID)
	return cliente, nil
}

func (s *Service) UpdateCliente(ctx context.Context, p domain.Principal, id string, input domain.ClienteInput) (*domain.Cliente, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	cliente, err := s.clienteRepo.GetCliente(ctx, id)
	if err != nil {
		return nil, err
	}

	hierarchyChanged := false
	if input.TierID != nil && *input.TierID != cliente.TierID {
		if _, err := s.tierRepo.GetTier(ctx, *input.TierID); err != nil {
			return nil, err
		}
		cliente.TierID = *input.TierID
		hierarchyChanged = true
	}
	if input.Nome != nil {
		if err := required("nome", !blank(input.Nome)); err != nil {
			return nil, err
		}
		cliente.Nome = strings.TrimSpace(*input.Nome)
	}
	if input.LogoURL != nil {
		cliente.LogoURL = input.LogoURL
	}
	if input.MarginMeta != nil {
		cliente.MarginMeta = input.MarginMeta
		hierarchyChanged = true
	}

	if err := s.clienteRepo.UpdateCliente(ctx, cliente); err != nil {
		return nil, err
	}
	if hierarchyChanged {
		s.invalidateReports(ctx)
	}

	return cliente, nil
}

func (s *Service) DeleteCliente(ctx context.Context, p domain.Principal, id string) error {
	if err := access.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.clienteRepo.DeleteCliente(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	return nil
}
