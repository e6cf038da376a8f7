package reporting

import (
	"fmt"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// ResolveMarginMeta devolve a primeira meta definida na ordem
// registro, projeto, cliente, tier. Nil quando nenhum nível define meta.
func ResolveMarginMeta(r domain.RegistroDetalhado) *float64 {
	return firstDefined(r.MarginMeta, r.Projeto.MarginMeta, r.Cliente.MarginMeta, r.Tier.MarginMeta)
}

func firstDefined(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// checkRegistro garante valores finitos e hierarquia coerente com as chaves do registro
func checkRegistro(r domain.RegistroDetalhado) error {
	if !utils.IsFinite(r.ReceitaBruta, r.ReceitaLiquida, r.CustoProjetado) {
		return fmt.Errorf("%w: registro %s com valores não numéricos", domain.ErrInvalidInput, r.ID)
	}
	if meta := ResolveMarginMeta(r); meta != nil && !utils.IsFinite(*meta) {
		return fmt.Errorf("%w: registro %s com meta não numérica", domain.ErrInvalidInput, r.ID)
	}

	switch {
	case r.Projeto.ID == "" || r.Projeto.ID != r.ProjetoID:
		return fmt.Errorf("%w: projeto %s do registro %s", domain.ErrNotFound, r.ProjetoID, r.ID)
	case r.Cliente.ID == "" || r.Cliente.ID != r.Projeto.ClienteID:
		return fmt.Errorf("%w: cliente %s do projeto %s", domain.ErrNotFound, r.Projeto.ClienteID, r.Projeto.ID)
	case r.Tier.ID == "" || r.Tier.ID != r.Cliente.TierID:
		return fmt.Errorf("%w: tier %s do cliente %s", domain.ErrNotFound, r.Cliente.TierID, r.Cliente.ID)
	}

	return nil
}

func checkAll(registros []domain.RegistroDetalhado) error {
	for _, r := range registros {
		if err := checkRegistro(r); err != nil {
			return err
		}
	}
	return nil
}
