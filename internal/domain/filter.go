package domain

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// IDList é o conjunto de IDs aceito em uma dimensão de filtro. Uma lista vazia
// não restringe a dimensão.
type IDList []string

// ParseIDList lê parâmetros repetidos (?tier_id=a&tier_id=b) e separados por vírgula
func ParseIDList(values url.Values, key string) IDList {
	var ids IDList
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" || slices.Contains(ids, part) {
				continue
			}
			ids = append(ids, part)
		}
	}
	return ids
}

func (l IDList) Empty() bool {
	return len(l) == 0
}

func (l IDList) Contains(id string) bool {
	return slices.Contains(l, id)
}

// Intersect mantém a ordem de l
func (l IDList) Intersect(other IDList) IDList {
	out := IDList{}
	for _, id := range l {
		if other.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

type StatusFilter string

const (
	StatusPipeline  StatusFilter = "pipeline"
	StatusPlanejado StatusFilter = "planejado"
	StatusRealizado StatusFilter = "realizado"
)

// ParseStatusFilter aceita vazio como pipeline
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch StatusFilter(strings.TrimSpace(raw)) {
	case "", StatusPipeline:
		return StatusPipeline, nil
	case StatusPlanejado:
		return StatusPlanejado, nil
	case StatusRealizado:
		return StatusRealizado, nil
	}
	return "", fmt.Errorf("%w: status deve ser planejado, realizado ou pipeline", ErrInvalidInput)
}

// ReportFilter são os filtros de consulta dos relatórios. As dimensões são
// combinadas com AND e os IDs de cada dimensão com OR.
type ReportFilter struct {
	Ano        int
	TierIDs    IDList
	ClienteIDs IDList
	ProjetoIDs IDList
	Status     StatusFilter
}

// CacheKey identifica o filtro de forma estável
func (f ReportFilter) CacheKey() string {
	norm := func(l IDList) string {
		c := slices.Clone(l)
		slices.Sort(c)
		return strings.Join(c, ",")
	}
	return fmt.Sprintf("%d|t=%s|c=%s|p=%s|s=%s", f.Ano, norm(f.TierIDs), norm(f.ClienteIDs), norm(f.ProjetoIDs), f.Status)
}

// Scope é o conjunto de tiers visíveis para um usuário
type Scope struct {
	All     bool
	TierIDs IDList
}

func (s Scope) Allows(tierID string) bool {
	return s.All || s.TierIDs.Contains(tierID)
}
