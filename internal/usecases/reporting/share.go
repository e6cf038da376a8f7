package reporting

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
)

// ClienteShare calcula a participação de cada cliente na receita bruta total
func ClienteShare(registros []domain.RegistroDetalhado) ([]domain.ClienteShare, error) {
	type acc struct {
		nome  string
		bruta decimal.Decimal
	}

	byCliente := make(map[string]*acc)
	var order []string
	total := decimal.Zero

	for _, r := range registros {
		if err := checkRegistro(r); err != nil {
			return nil, err
		}
		a, ok := byCliente[r.Cliente.ID]
		if !ok {
			a = &acc{nome: r.Cliente.Nome}
			byCliente[r.Cliente.ID] = a
			order = append(order, r.Cliente.ID)
		}
		bruta := decimal.NewFromFloat(r.ReceitaBruta)
		a.bruta = a.bruta.Add(bruta)
		total = total.Add(bruta)
	}

	shares := make([]domain.ClienteShare, 0, len(order))
	for _, id := range order {
		a := byCliente[id]
		s := domain.ClienteShare{ID: id, Nome: a.nome, ReceitaBruta: a.bruta.InexactFloat64()}
		if total.IsPositive() {
			s.Pct = a.bruta.InexactFloat64() / total.InexactFloat64()
		}
		shares = append(shares, s)
	}

	slices.SortStableFunc(shares, func(a, b domain.ClienteShare) int {
		return cmp.Or(
			cmp.Compare(b.ReceitaBruta, a.ReceitaBruta),
			cmp.Compare(a.Nome, b.Nome),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return shares, nil
}
