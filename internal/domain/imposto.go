package domain

import "time"

// Imposto é uma alíquota aplicada à receita de um projeto dentro de uma vigência
type Imposto struct {
	ID             string     `json:"id"`
	ProjetoID      string     `json:"projeto_id"`
	Percentual     float64    `json:"percentual"`
	VigenciaInicio time.Time  `json:"vigencia_inicio"`
	VigenciaFim    *time.Time `json:"vigencia_fim"`
	Ativo          bool       `json:"ativo"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// VigenteEm indica se a alíquota cobre o instante informado
func (i Imposto) VigenteEm(t time.Time) bool {
	if t.Before(i.VigenciaInicio) {
		return false
	}
	return i.VigenciaFim == nil || !t.After(*i.VigenciaFim)
}

type ImpostoInput struct {
	ProjetoID      *string  `json:"projeto_id" validate:"omitempty,min=1"`
	Percentual     *float64 `json:"percentual" validate:"omitempty,gte=0,lte=100"`
	VigenciaInicio *string  `json:"vigencia_inicio"`
	VigenciaFim    *string  `json:"vigencia_fim"`
	Ativo          *bool    `json:"ativo"`
}

type RecalcularInput struct {
	Registros []string `json:"registros" validate:"required,min=1,dive,required"`
}
