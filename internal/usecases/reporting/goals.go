package reporting

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
)

type entityAcc struct {
	id      string
	nome    string
	meta    *float64
	liquida decimal.Decimal
	custo   decimal.Decimal
}

func goalsBy(registros []domain.RegistroDetalhado, entity func(domain.RegistroDetalhado) (id, nome string, meta *float64)) ([]domain.MetaEntidade, error) {
	byID := make(map[string]*entityAcc)
	for _, r := range registros {
		if err := checkRegistro(r); err != nil {
			return nil, err
		}
		id, nome, meta := entity(r)
		a, ok := byID[id]
		if !ok {
			a = &entityAcc{id: id, nome: nome, meta: meta}
			byID[id] = a
		}
		a.liquida = a.liquida.Add(decimal.NewFromFloat(r.ReceitaLiquida))
		a.custo = a.custo.Add(decimal.NewFromFloat(r.CustoProjetado))
	}

	out := make([]domain.MetaEntidade, 0, len(byID))
	for _, a := range byID {
		e := domain.MetaEntidade{ID: a.id, Nome: a.nome}
		if a.meta != nil {
			e.MetaPct = *a.meta / 100
		}
		if a.liquida.IsPositive() {
			e.AtualPct = a.liquida.Sub(a.custo).InexactFloat64() / a.liquida.InexactFloat64()
		}
		out = append(out, e)
	}

	slices.SortFunc(out, func(a, b domain.MetaEntidade) int {
		return cmp.Or(cmp.Compare(a.Nome, b.Nome), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// GoalsByTier compara a meta de cada tier com a margem líquida dos seus registros
func GoalsByTier(registros []domain.RegistroDetalhado) ([]domain.MetaEntidade, error) {
	return goalsBy(registros, func(r domain.RegistroDetalhado) (string, string, *float64) {
		return r.Tier.ID, r.Tier.Nome, r.Tier.MarginMeta
	})
}

// GoalsByCliente usa a meta do cliente ou, na falta dela, a do tier
func GoalsByCliente(registros []domain.RegistroDetalhado) ([]domain.MetaEntidade, error) {
	return goalsBy(registros, func(r domain.RegistroDetalhado) (string, string, *float64) {
		return r.Cliente.ID, r.Cliente.Nome, firstDefined(r.Cliente.MarginMeta, r.Tier.MarginMeta)
	})
}

// GoalsByProjeto usa a meta do projeto, do cliente ou do tier, nessa ordem
func GoalsByProjeto(registros []domain.RegistroDetalhado) ([]domain.MetaEntidade, error) {
	return goalsBy(registros, func(r domain.RegistroDetalhado) (string, string, *float64) {
		return r.Projeto.ID, r.Projeto.Nome, firstDefined(r.Projeto.MarginMeta, r.Cliente.MarginMeta, r.Tier.MarginMeta)
	})
}

// GoalsSeries devolve a meta ponderada e a margem líquida de cada mês do ano
func GoalsSeries(year int, registros []domain.RegistroDetalhado) ([]domain.PontoMeta, error) {
	monthly, _, err := MonthlySeries(year, registros)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PontoMeta, 0, len(monthly))
	for _, p := range monthly {
		out = append(out, domain.PontoMeta{Mes: p.Mes, MetaPct: p.MarginMetaPct, AtualPct: p.MargemLiquidaPct})
	}
	return out, nil
}
