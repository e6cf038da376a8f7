package reporting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
)

func quarterLabel(q int) string {
	return fmt.Sprintf("Q%d", q+1)
}

// monthIndex lê o mês (1-12) de um rótulo YYYY-MM
func monthIndex(mes string) (int, bool) {
	_, month, found := strings.Cut(mes, "-")
	if !found {
		return 0, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// QuarterlySeries soma a série mensal em Q1..Q4 recalculando margens. A meta
// do trimestre é a média simples das metas mensais.
func QuarterlySeries(monthly []domain.PontoMensal) []domain.PontoMensal {
	type quarterAcc struct {
		bruta, liquida, custo decimal.Decimal
		metaSum               float64
		months                int
	}

	var quarters [4]quarterAcc
	for _, p := range monthly {
		m, ok := monthIndex(p.Mes)
		if !ok {
			continue
		}
		q := &quarters[(m-1)/3]
		q.bruta = q.bruta.Add(decimal.NewFromFloat(p.ReceitaBruta))
		q.liquida = q.liquida.Add(decimal.NewFromFloat(p.ReceitaLiquida))
		q.custo = q.custo.Add(decimal.NewFromFloat(p.Custo))
		q.metaSum += p.MarginMetaPct
		q.months++
	}

	out := make([]domain.PontoMensal, 0, 4)
	for i, q := range quarters {
		var meta float64
		if q.months > 0 {
			meta = q.metaSum / float64(q.months)
		}
		out = append(out, newPontoMensal(quarterLabel(i), q.bruta, q.liquida, q.custo, meta))
	}
	return out
}

// QuarterlyGoals calcula a média de meta e margem atual dos meses presentes em
// cada trimestre. Trimestres sem meses ficam zerados.
func QuarterlyGoals(series []domain.PontoMeta) []domain.PontoMeta {
	var sums [4]struct {
		meta, atual float64
		months      int
	}

	for _, p := range series {
		m, ok := monthIndex(p.Mes)
		if !ok {
			continue
		}
		s := &sums[(m-1)/3]
		s.meta += p.MetaPct
		s.atual += p.AtualPct
		s.months++
	}

	out := make([]domain.PontoMeta, 0, 4)
	for i, s := range sums {
		p := domain.PontoMeta{Mes: quarterLabel(i)}
		if s.months > 0 {
			p.MetaPct = s.meta / float64(s.months)
			p.AtualPct = s.atual / float64(s.months)
		}
		out = append(out, p)
	}
	return out
}
