package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// CalcReceitaLiquida aplica a alíquota sobre a receita bruta e arredonda para
// 2 casas decimais, meio para longe do zero.
func CalcReceitaLiquida(receitaBruta, percentual float64) (float64, error) {
	if !utils.IsFinite(receitaBruta, percentual) {
		return 0, fmt.Errorf("%w: receita bruta e percentual devem ser números finitos", domain.ErrInvalidInput)
	}
	if receitaBruta < 0 {
		return 0, fmt.Errorf("%w: receita bruta negativa (%v)", domain.ErrInvalidInput, receitaBruta)
	}
	if percentual < 0 || percentual > 100 {
		return 0, fmt.Errorf("%w: percentual fora do intervalo 0-100 (%v)", domain.ErrInvalidInput, percentual)
	}

	bruta := decimal.NewFromFloat(receitaBruta)
	imposto := bruta.Mul(decimal.NewFromFloat(percentual)).Div(decimal.NewFromInt(100))

	return bruta.Sub(imposto).Round(2).InexactFloat64(), nil
}
