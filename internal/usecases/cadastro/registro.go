package cadastro

import (
	"context"
	"fmt"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/internal/usecases/reporting"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// RegistroQuery são os filtros aceitos na listagem de registros
type RegistroQuery struct {
	ProjetoID string
	MesRef    string
	Status    string
}

func (s *Service) ListRegistros(ctx context.Context, p domain.Principal, q RegistroQuery) ([]domain.RegistroMensal, error) {
	filter := domain.RegistroListFilter{
		ProjetoID: q.ProjetoID,
		Scope:     access.ScopeFor(p),
	}

	if q.MesRef != "" {
		mes, err := utils.ParseMonth(q.MesRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		filter.MesRef = &mes
	}
	if q.Status != "" {
		status := domain.RegistroStatus(q.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: status deve ser planejado ou realizado", domain.ErrInvalidInput)
		}
		filter.Status = status
	}

	return s.registroRepo.ListRegistros(ctx, filter)
}

func (s *Service) GetRegistro(ctx context.Context, p domain.Principal, id string) (*domain.RegistroMensal, error) {
	registro, err := s.registroRepo.GetRegistro(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkProjeto(ctx, p, registro.ProjetoID); err != nil {
		return nil, err
	}
	return registro, nil
}

// impostoDoProjeto carrega o imposto e garante que ele pertence ao projeto do registro
func (s *Service) impostoDoProjeto(ctx context.Context, impostoID, projetoID string) (*domain.Imposto, error) {
	imposto, err := s.impostoRepo.GetImposto(ctx, impostoID)
	if err != nil {
		return nil, err
	}
	if imposto.ProjetoID != projetoID {
		return nil, fmt.Errorf("%w: imposto %s não pertence ao projeto %s", domain.ErrInvalidInput, impostoID, projetoID)
	}
	return imposto, nil
}

func checkLiquida(v float64) error {
	if !utils.IsFinite(v) {
		return fmt.Errorf("%w: receita_liquida deve ser um número finito", domain.ErrInvalidInput)
	}
	return nil
}

func (s *Service) CreateRegistro(ctx context.Context, p domain.Principal, input domain.RegistroInput) (*domain.RegistroMensal, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if err := required("projeto_id", !blank(input.ProjetoID)); err != nil {
		return nil, err
	}
	if err := required("mes_ref", !blank(input.MesRef)); err != nil {
		return nil, err
	}
	if err := required("receita_bruta", input.ReceitaBruta != nil); err != nil {
		return nil, err
	}
	if err := required("imposto_id", !blank(input.ImpostoID)); err != nil {
		return nil, err
	}

	mesRef, err := utils.ParseMonth(*input.MesRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.checkProjeto(ctx, p, *input.ProjetoID); err != nil {
		return nil, err
	}

	imposto, err := s.impostoDoProjeto(ctx, *input.ImpostoID, *input.ProjetoID)
	if err != nil {
		return nil, err
	}

	registro := &domain.RegistroMensal{
		ProjetoID:    *input.ProjetoID,
		MesRef:       mesRef,
		ReceitaBruta: *input.ReceitaBruta,
		ImpostoID:    imposto.ID,
		Status:       domain.RegistroPlanejado,
		Observacoes:  input.Observacoes,
		MarginMeta:   input.MarginMeta,
	}
	if input.CustoProjetado != nil {
		registro.CustoProjetado = *input.CustoProjetado
	}
	if input.Status != nil {
		registro.Status = *input.Status
	}

	if input.ReceitaLiquida != nil {
		if err := checkLiquida(*input.ReceitaLiquida); err != nil {
			return nil, err
		}
		registro.ReceitaLiquida = *input.ReceitaLiquida
	} else {
		registro.ReceitaLiquida, err = reporting.CalcReceitaLiquida(registro.ReceitaBruta, imposto.Percentual)
		if err != nil {
			return nil, err
		}
	}

	registro.ID, err = s.id()
	if err != nil {
		return nil, err
	}

	if err := s.registroRepo.CreateRegistro(ctx, registro); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	log.ForContext(ctx).WithFields(log.Fields{
		"registro_id": registro.ID,
		"projeto_id":  registro.ProjetoID,
		"mes_ref":     registro.MesRef.Format("2006-01"),
		"status":      registro.Status,
	}).Info("cadastro: registro criado")

	return registro, nil
}

// UpdateRegistro recalcula a receita líquida quando a receita bruta ou o imposto
// mudam, a menos que a receita líquida venha explícita.
func (s *Service) UpdateRegistro(ctx context.Context, p domain.Principal, id string, input domain.RegistroInput) (*domain.RegistroMensal, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	registro, err := s.registroRepo.GetRegistro(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkProjeto(ctx, p, registro.ProjetoID); err != nil {
		return nil, err
	}

	if input.ProjetoID != nil && *input.ProjetoID != registro.ProjetoID {
		return nil, fmt.Errorf("%w: projeto_id do registro não pode ser alterado", domain.ErrInvalidInput)
	}

	recalc := false
	var imposto *domain.Imposto
	if input.MesRef != nil {
		mesRef, err := utils.ParseMonth(*input.MesRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		registro.MesRef = mesRef
	}
	if input.ReceitaBruta != nil && *input.ReceitaBruta != registro.ReceitaBruta {
		registro.ReceitaBruta = *input.ReceitaBruta
		recalc = true
	}
	if input.ImpostoID != nil && *input.ImpostoID != registro.ImpostoID {
		imposto, err = s.impostoDoProjeto(ctx, *input.ImpostoID, registro.ProjetoID)
		if err != nil {
			return nil, err
		}
		registro.ImpostoID = imposto.ID
		recalc = true
	}
	if input.CustoProjetado != nil {
		registro.CustoProjetado = *input.CustoProjetado
	}
	if input.Status != nil {
		registro.Status = *input.Status
	}
	if input.Observacoes != nil {
		registro.Observacoes = input.Observacoes
	}
	if input.MarginMeta != nil {
		registro.MarginMeta = input.MarginMeta
	}

	switch {
	case input.ReceitaLiquida != nil:
		if err := checkLiquida(*input.ReceitaLiquida); err != nil {
			return nil, err
		}
		registro.ReceitaLiquida = *input.ReceitaLiquida
	case recalc:
		if imposto == nil {
			imposto, err = s.impostoDoProjeto(ctx, registro.ImpostoID, registro.ProjetoID)
			if err != nil {
				return nil, err
			}
		}
		registro.ReceitaLiquida, err = reporting.CalcReceitaLiquida(registro.ReceitaBruta, imposto.Percentual)
		if err != nil {
			return nil, err
		}
	}

	if err := s.registroRepo.UpdateRegistro(ctx, registro); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	return registro, nil
}

func (s *Service) DeleteRegistro(ctx context.Context, p domain.Principal, id string) error {
	registro, err := s.registroRepo.GetRegistro(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkProjeto(ctx, p, registro.ProjetoID); err != nil {
		return err
	}
	if err := s.registroRepo.DeleteRegistro(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	return nil
}
