package domain

import "time"

type ProjetoStatus string

const (
	ProjetoStatusAtivo   ProjetoStatus = "ativo"
	ProjetoStatusPausado ProjetoStatus = "pausado"
)

func (s ProjetoStatus) Valid() bool {
	return s == ProjetoStatusAtivo || s == ProjetoStatusPausado
}

type Projeto struct {
	ID         string        `json:"id"`
	ClienteID  string        `json:"cliente_id"`
	Nome       string        `json:"nome"`
	Status     ProjetoStatus `json:"status"`
	MarginMeta *float64      `json:"margin_meta"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type ProjetoInput struct {
	ClienteID  *string        `json:"cliente_id" validate:"omitempty,min=1"`
	Nome       *string        `json:"nome" validate:"omitempty,min=1"`
	Status     *ProjetoStatus `json:"status" validate:"omitempty,oneof=ativo pausado"`
	MarginMeta *float64       `json:"margin_meta" validate:"omitempty,gte=0,lte=100"`
}
