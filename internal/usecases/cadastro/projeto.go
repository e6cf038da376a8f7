package cadastro

import (
	"context"
	"strings"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/log"
)

func (s *Service) ListProjetos(ctx context.Context, p domain.Principal, clienteID string) ([]domain.Projeto, error) {
	return s.projetoRepo.ListProjetos(ctx, clienteID, access.ScopeFor(p))
}

// checkProjeto confirma que o projeto existe e pertence a um tier visível
func (s *Service) checkProjeto(ctx context.Context, p domain.Principal, projetoID string) error {
	tierID, err := s.projetoRepo.GetProjetoTierID(ctx, projetoID)
	if err != nil {
		return err
	}
	return access.CheckTier(p, tierID)
}

func (s *Service) GetProjeto(ctx context.Context, p domain.Principal, id string) (*domain.Projeto, error) {
	if err := s.checkProjeto(ctx, p, id); err != nil {
		return nil, err
	}
	return s.projetoRepo.GetProjeto(ctx, id)
}

func (s *Service) CreateProjeto(ctx context.Context, p domain.Principal, input domain.ProjetoInput) (*domain.Projeto, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := required("cliente_id", !blank(input.ClienteID)); err != nil {
		return nil, err
	}
	if err := required("nome", !blank(input.Nome)); err != nil {
		return nil, err
	}

	if _, err := s.clienteRepo.GetCliente(ctx, *input.ClienteID); err != nil {
		return nil, err
	}

	id, err := s.id()
	if err != nil {
		return nil, err
	}

	status := domain.ProjetoStatusAtivo
	if input.Status != nil {
		status = *input.Status
	}

	projeto := &domain.Projeto{
		ID:         id,
		ClienteID:  *input.ClienteID,
		Nome:       strings.TrimSpace(*input.Nome),
		Status:     status,
		MarginMeta: input.MarginMeta,
	}
	if err := s.projetoRepo.CreateProjeto(ctx, projeto); err != nil {
		return nil, err
	}

	log.ForContext(ctx).Infof("cadastro: projeto %s criado no cliente %s", projeto.ID, projeto.ClienteID)
	return projeto, nil
}

func (s *Service) UpdateProjeto(ctx context.Context, p domain.Principal, id string, input domain.ProjetoInput) (*domain.Projeto, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	projeto, err := s.projetoRepo.GetProjeto(ctx, id)
	if err != nil {
		return nil, err
	}

	hierarchyChanged := false
	if input.ClienteID != nil && *input.ClienteID != projeto.ClienteID {
		if _, err := s.clienteRepo.GetCliente(ctx, *input.ClienteID); err != nil {
			return nil, err
		}
		projeto.ClienteID = *input.ClienteID
		hierarchyChanged = true
	}
	if input.Nome != nil {
		if err := required("nome", !blank(input.Nome)); err != nil {
			return nil, err
		}
		projeto.Nome = strings.TrimSpace(*input.Nome)
	}
	if input.Status != nil {
		projeto.Status = *input.Status
	}
	if input.MarginMeta != nil {
		projeto.MarginMeta = input.MarginMeta
		hierarchyChanged = true
	}

	if err := s.projetoRepo.UpdateProjeto(ctx, projeto); err != nil {
		return nil, err
	}
	if hierarchyChanged {
		s.invalidateReports(ctx)
	}

	return projeto, nil
}

func (s *Service) DeleteProjeto(ctx context.Context, p domain.Principal, id string) error {
	if err := access.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.projetoRepo.DeleteProjeto(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	return nil
}
