package domain

import "time"

type RegistroStatus string

const (
	RegistroPlanejado RegistroStatus = "planejado"
	RegistroRealizado RegistroStatus = "realizado"
)

func (s RegistroStatus) Valid() bool {
	return s == RegistroPlanejado || s == RegistroRealizado
}

// RegistroMensal é o lançamento financeiro de um projeto em um mês de referência
type RegistroMensal struct {
	ID             string         `json:"id"`
	ProjetoID      string         `json:"projeto_id"`
	MesRef         time.Time      `json:"mes_ref"`
	ReceitaBruta   float64        `json:"receita_bruta"`
	ImpostoID      string         `json:"imposto_id"`
	ReceitaLiquida float64        `json:"receita_liquida"`
	CustoProjetado float64        `json:"custo_projetado"`
	Status         RegistroStatus `json:"status"`
	Observacoes    *string        `json:"observacoes"`
	MarginMeta     *float64       `json:"margin_meta"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// RegistroDetalhado carrega o registro junto da hierarquia que o contém,
// necessária para resolver metas e agrupar por cliente/tier.
type RegistroDetalhado struct {
	RegistroMensal
	Projeto Projeto
	Cliente Cliente
	Tier    Tier
}

type RegistroInput struct {
	ProjetoID      *string         `json:"projeto_id" validate:"omitempty,min=1"`
	MesRef         *string         `json:"mes_ref"`
	ReceitaBruta   *float64        `json:"receita_bruta" validate:"omitempty,gte=0"`
	ImpostoID      *string         `json:"imposto_id" validate:"omitempty,min=1"`
	ReceitaLiquida *float64        `json:"receita_liquida"`
	CustoProjetado *float64        `json:"custo_projetado" validate:"omitempty,gte=0"`
	Status         *RegistroStatus `json:"status" validate:"omitempty,oneof=planejado realizado"`
	Observacoes    *string         `json:"observacoes"`
	MarginMeta     *float64        `json:"margin_meta" validate:"omitempty,gte=0,lte=100"`
}

type RegistroListFilter struct {
	ProjetoID string
	MesRef    *time.Time
	Status    RegistroStatus
	Scope     Scope
}
