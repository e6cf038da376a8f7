package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// PlannedVsRealized mantém, por (projeto, mês), o planejado e o realizado mais
// recentes lado a lado. Meses sem nenhum realizado repetem os valores planejados.
func PlannedVsRealized(year int, registros []domain.RegistroDetalhado) ([]domain.PlanejadoRealizado, error) {
	planejados := make(map[registroKey]domain.RegistroDetalhado)
	realizados := make(map[registroKey]domain.RegistroDetalhado)

	for _, r := range registros {
		if err := checkRegistro(r); err != nil {
			return nil, err
		}
		if !inYear(r, year) {
			continue
		}

		latest := planejados
		switch r.Status {
		case domain.RegistroPlanejado:
		case domain.RegistroRealizado:
			latest = realizados
		default:
			continue
		}

		key := keyOf(r)
		if current, ok := latest[key]; !ok || newer(r, current) {
			latest[key] = r
		}
	}

	type comparisonAcc struct {
		planejado, custoPlanejado decimal.Decimal
		realizado, custoRealizado decimal.Decimal
		hasRealizado              bool
	}
	var months [12]comparisonAcc

	for _, r := range planejados {
		m := &months[r.MesRef.UTC().Month()-1]
		m.planejado = m.planejado.Add(decimal.NewFromFloat(r.ReceitaLiquida))
		m.custoPlanejado = m.custoPlanejado.Add(decimal.NewFromFloat(r.CustoProjetado))
	}
	for _, r := range realizados {
		m := &months[r.MesRef.UTC().Month()-1]
		m.realizado = m.realizado.Add(decimal.NewFromFloat(r.ReceitaLiquida))
		m.custoRealizado = m.custoRealizado.Add(decimal.NewFromFloat(r.CustoProjetado))
		m.hasRealizado = true
	}

	out := make([]domain.PlanejadoRealizado, 0, 12)
	for i, m := range months {
		if !m.hasRealizado {
			m.realizado = m.planejado
			m.custoRealizado = m.custoPlanejado
		}
		out = append(out, domain.PlanejadoRealizado{
			Mes:            utils.MonthLabel(year, time.Month(i+1)),
			Planejado:      m.planejado.InexactFloat64(),
			Realizado:      m.realizado.InexactFloat64(),
			CustoPlanejado: m.custoPlanejado.InexactFloat64(),
			CustoRealizado: m.custoRealizado.InexactFloat64(),
		})
	}
	return out, nil
}
