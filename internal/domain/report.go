package domain

// PontoMensal é um mês da série financeira do dashboard
type PontoMensal struct {
	Mes              string  `json:"mes"`
	ReceitaBruta     float64 `json:"receita_bruta"`
	ReceitaLiquida   float64 `json:"receita_liquida"`
	Custo            float64 `json:"custo"`
	MargemBruta      float64 `json:"margem_bruta"`
	MargemLiquida    float64 `json:"margem_liquida"`
	MarginMetaPct    float64 `json:"margin_meta_pct"`
	MargemBrutaPct   float64 `json:"margem_bruta_pct"`
	MargemLiquidaPct float64 `json:"margem_liquida_pct"`
}

type Totais struct {
	ReceitaBruta     float64 `json:"receita_bruta"`
	ReceitaLiquida   float64 `json:"receita_liquida"`
	Custo            float64 `json:"custo"`
	MargemBruta      float64 `json:"margem_bruta"`
	MargemLiquida    float64 `json:"margem_liquida"`
	MargemBrutaPct   float64 `json:"margem_bruta_pct"`
	MargemLiquidaPct float64 `json:"margem_liquida_pct"`
}

type PlanejadoRealizado struct {
	Mes            string  `json:"mes"`
	Planejado      float64 `json:"planejado"`
	Realizado      float64 `json:"realizado"`
	CustoPlanejado float64 `json:"custo_planejado"`
	CustoRealizado float64 `json:"custo_realizado"`
}

type ClienteShare struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	ReceitaBruta float64 `json:"receita_bruta"`
	Pct          float64 `json:"pct"`
}

type Dashboard struct {
	SeriesMensal       []PontoMensal        `json:"series_mensal"`
	Totais             Totais               `json:"totais"`
	SeriesTrimestral   []PontoMensal        `json:"series_trimestral"`
	PlannedVsRealizado []PlanejadoRealizado `json:"planned_vs_realizado"`
	ClienteShare       []ClienteShare       `json:"cliente_share"`
}

// MetaEntidade compara a meta de margem com a margem atual de um tier, cliente ou projeto
type MetaEntidade struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	MetaPct  float64 `json:"meta_pct"`
	AtualPct float64 `json:"atual_pct"`
}

type PontoMeta struct {
	Mes      string  `json:"mes"`
	MetaPct  float64 `json:"meta_pct"`
	AtualPct float64 `json:"atual_pct"`
}

type Goals struct {
	Tiers            []MetaEntidade `json:"tiers"`
	Clientes         []MetaEntidade `json:"clientes"`
	Projetos         []MetaEntidade `json:"projetos"`
	SeriesMensal     []PontoMeta    `json:"series_mensal"`
	SeriesTrimestral []PontoMeta    `json:"series_trimestral"`
}
