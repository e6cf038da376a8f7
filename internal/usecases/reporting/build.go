package reporting

import (
	"github.com/vfg2006/hangar-api/internal/domain"
)

func registrosDoAno(year int, registros []domain.RegistroDetalhado) []domain.RegistroDetalhado {
	out := make([]domain.RegistroDetalhado, 0, len(registros))
	for _, r := range registros {
		if inYear(r, year) {
			out = append(out, r)
		}
	}
	return out
}

// BuildDashboard monta o dashboard financeiro a partir dos registros brutos do
// escopo. O comparativo planejado x realizado sempre considera os dois status.
func BuildDashboard(year int, status domain.StatusFilter, registros []domain.RegistroDetalhado) (*domain.Dashboard, error) {
	if err := checkAll(registros); err != nil {
		return nil, err
	}

	doAno := registrosDoAno(year, registros)
	selected := SelectStatus(doAno, status)

	monthly, totais, err := MonthlySeries(year, selected)
	if err != nil {
		return nil, err
	}

	comparativo, err := PlannedVsRealized(year, doAno)
	if err != nil {
		return nil, err
	}

	share, err := ClienteShare(selected)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		SeriesMensal:       monthly,
		Totais:             totais,
		SeriesTrimestral:   QuarterlySeries(monthly),
		PlannedVsRealizado: comparativo,
		ClienteShare:       share,
	}, nil
}

// BuildGoals monta o acompanhamento de metas por tier, cliente, projeto e mês
func BuildGoals(year int, status domain.StatusFilter, registros []domain.RegistroDetalhado) (*domain.Goals, error) {
	if err := checkAll(registros); err != nil {
		return nil, err
	}

	selected := SelectStatus(registrosDoAno(year, registros), status)

	tiers, err := GoalsByTier(selected)
	if err != nil {
		return nil, err
	}
	clientes, err := GoalsByCliente(selected)
	if err != nil {
		return nil, err
	}
	projetos, err := GoalsByProjeto(selected)
	if err != nil {
		return nil, err
	}
	series, err := GoalsSeries(year, selected)
	if err != nil {
		return nil, err
	}

	return &domain.Goals{
		Tiers:            tiers,
		Clientes:         clientes,
		Projetos:         projetos,
		SeriesMensal:     series,
		SeriesTrimestral: QuarterlyGoals(series),
	}, nil
}
