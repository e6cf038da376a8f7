package cadastro

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

func (s *Service) ListImpostos(ctx context.Context, p domain.Principal, projetoID string) ([]domain.Imposto, error) {
	return s.impostoRepo.ListImpostos(ctx, projetoID, access.ScopeFor(p))
}

func (s *Service) GetImposto(ctx context.Context, p domain.Principal, id string) (*domain.Imposto, error) {
	imposto, err := s.impostoRepo.GetImposto(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkProjeto(ctx, p, imposto.ProjetoID); err != nil {
		return nil, err
	}
	return imposto, nil
}

// applyVigencia interpreta as datas de vigência (YYYY-MM-DD). Fim vazio remove o fim.
func applyVigencia(imposto *domain.Imposto, inicio, fim *string) error {
	if inicio != nil {
		t, err := utils.ParseDate(strings.TrimSpace(*inicio))
		if err != nil || t.IsZero() {
			return fmt.Errorf("%w: vigencia_inicio deve estar no formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		imposto.VigenciaInicio = *t
	}
	if fim != nil {
		if strings.TrimSpace(*fim) == "" {
			imposto.VigenciaFim = nil
		} else {
			t, err := utils.ParseDate(strings.TrimSpace(*fim))
			if err != nil {
				return fmt.Errorf("%w: vigencia_fim deve estar no formato YYYY-MM-DD", domain.ErrInvalidInput)
			}
			imposto.VigenciaFim = t
		}
	}
	if imposto.VigenciaFim != nil && imposto.VigenciaFim.Before(imposto.VigenciaInicio) {
		return fmt.Errorf("%w: vigencia_fim anterior a vigencia_inicio", domain.ErrInvalidInput)
	}
	return nil
}

func (s *Service) CreateImposto(ctx context.Context, p domain.Principal, input domain.ImpostoInput) (*domain.Imposto, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := required("projeto_id", !blank(input.ProjetoID)); err != nil {
		return nil, err
	}
	if err := required("percentual", input.Percentual != nil); err != nil {
		return nil, err
	}
	if err := required("vigencia_inicio", !blank(input.VigenciaInicio)); err != nil {
		return nil, err
	}

	if _, err := s.projetoRepo.GetProjeto(ctx, *input.ProjetoID); err != nil {
		return nil, err
	}

	imposto := &domain.Imposto{
		ProjetoID:  *input.ProjetoID,
		Percentual: *input.Percentual,
		Ativo:      true,
	}
	if input.Ativo != nil {
		imposto.Ativo = *input.Ativo
	}
	if err := applyVigencia(imposto, input.VigenciaInicio, input.VigenciaFim); err != nil {
		return nil, err
	}

	id, err := s.id()
	if err != nil {
		return nil, err
	}
	imposto.ID = id

	if err := s.impostoRepo.CreateImposto(ctx, imposto); err != nil {
		return nil, err
	}

	log.ForContext(ctx).Infof("cadastro: imposto %s (%.2f%%) criado para o projeto %s", imposto.ID, imposto.Percentual, imposto.ProjetoID)
	return imposto, nil
}

// UpdateImposto não recalcula registros existentes; para isso existe RecalcularImposto
func (s *Service) UpdateImposto(ctx context.Context, p domain.Principal, id string, input domain.ImpostoInput) (*domain.Imposto, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	imposto, err := s.impostoRepo.GetImposto(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProjetoID != nil && *input.ProjetoID != imposto.ProjetoID {
		return nil, fmt.Errorf("%w: projeto_id do imposto não pode ser alterado", domain.ErrInvalidInput)
	}
	if input.Percentual != nil {
		imposto.Percentual = *input.Percentual
	}
	if input.Ativo != nil {
		imposto.Ativo = *input.Ativo
	}
	if err := applyVigencia(imposto, input.VigenciaInicio, input.VigenciaFim); err != nil {
		return nil, err
	}

	if err := s.impostoRepo.UpdateImposto(ctx, imposto); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	return imposto, nil
}

func (s *Service) DeleteImposto(ctx context.Context, p domain.Principal, id string) error {
	if err := access.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.impostoRepo.DeleteImposto(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	return nil
}

type RecalcularResult struct {
	ImpostoID   string `json:"imposto_id"`
	Atualizados int    `json:"updated"`
}

// RecalcularImposto reaplica a alíquota do imposto aos registros informados em uma única transação
func (s *Service) RecalcularImposto(ctx context.Context, p domain.Principal, id string, input domain.RecalcularInput) (*RecalcularResult, error) {
	if err := access.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	imposto, err := s.impostoRepo.GetImposto(ctx, id)
	if err != nil {
		return nil, err
	}

	calc := func(receitaBruta float64) (float64, error) {
		return reporting.CalcReceitaLiquida(receitaBruta, imposto.Percentual)
	}

	updated, err := s.registroRepo.RecalcularReceitas(ctx, imposto.ID, input.Registros, calc)
	if err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	log.ForContext(ctx).Infof("cadastro: imposto %s reaplicado a %d registros", imposto.ID, updated)

	return &RecalcularResult{ImpostoID: imposto.ID, Atualizados: updated}, nil
}
