package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// valores são somados em decimal para que mês e total fechem sem ruído de ponto flutuante
type monthAcc struct {
	bruta   decimal.Decimal
	liquida decimal.Decimal
	custo   decimal.Decimal
	metaNum float64
	metaDen float64
}

func (a *monthAcc) add(r domain.RegistroDetalhado) {
	a.bruta = a.bruta.Add(decimal.NewFromFloat(r.ReceitaBruta))
	a.liquida = a.liquida.Add(decimal.NewFromFloat(r.ReceitaLiquida))
	a.custo = a.custo.Add(decimal.NewFromFloat(r.CustoProjetado))

	if meta := ResolveMarginMeta(r); meta != nil {
		a.metaNum += *meta / 100 * r.ReceitaLiquida
		a.metaDen += r.ReceitaLiquida
	}
}

// metaPct é a meta de margem ponderada pela receita líquida
func (a *monthAcc) metaPct() float64 {
	return utils.SafeDiv(a.metaNum, a.metaDen)
}

func inYear(r domain.RegistroDetalhado, year int) bool {
	return r.MesRef.UTC().Year() == year
}

func accumulate(year int, registros []domain.RegistroDetalhado) ([12]monthAcc, error) {
	var months [12]monthAcc
	for _, r := range registros {
		if err := checkRegistro(r); err != nil {
			return months, err
		}
		if !inYear(r, year) {
			continue
		}
		months[r.MesRef.UTC().Month()-1].add(r)
	}
	return months, nil
}

func newPontoMensal(mes string, bruta, liquida, custo decimal.Decimal, metaPct float64) domain.PontoMensal {
	margemBruta := bruta.Sub(custo)
	margemLiquida := liquida.Sub(custo)

	p := domain.PontoMensal{
		Mes:            mes,
		ReceitaBruta:   bruta.InexactFloat64(),
		ReceitaLiquida: liquida.InexactFloat64(),
		Custo:          custo.InexactFloat64(),
		MargemBruta:    margemBruta.InexactFloat64(),
		MargemLiquida:  margemLiquida.InexactFloat64(),
		MarginMetaPct:  metaPct,
	}
	if bruta.IsPositive() {
		p.MargemBrutaPct = margemBruta.InexactFloat64() / p.ReceitaBruta
	}
	if liquida.IsPositive() {
		p.MargemLiquidaPct = margemLiquida.InexactFloat64() / p.ReceitaLiquida
	}
	return p
}

// MonthlySeries agrega os registros do ano em 12 pontos (janeiro a dezembro)
// e nos totais do ano. Registros de outros anos são ignorados.
func MonthlySeries(year int, registros []domain.RegistroDetalhado) ([]domain.PontoMensal, domain.Totais, error) {
	months, err := accumulate(year, registros)
	if err != nil {
		return nil, domain.Totais{}, err
	}

	series := make([]domain.PontoMensal, 0, 12)
	var bruta, liquida, custo decimal.Decimal
	for i, acc := range months {
		series = append(series, newPontoMensal(utils.MonthLabel(year, time.Month(i+1)), acc.bruta, acc.liquida, acc.custo, acc.metaPct()))
		bruta = bruta.Add(acc.bruta)
		liquida = liquida.Add(acc.liquida)
		custo = custo.Add(acc.custo)
	}

	total := newPontoMensal("", bruta, liquida, custo, 0)

	return series, domain.Totais{
		ReceitaBruta:     total.ReceitaBruta,
		ReceitaLiquida:   total.ReceitaLiquida,
		Custo:            total.Custo,
		MargemBruta:      total.MargemBruta,
		MargemLiquida:    total.MargemLiquida,
		MargemBrutaPct:   total.MargemBrutaPct,
		MargemLiquidaPct: total.MargemLiquidaPct,
	}, nil
}
