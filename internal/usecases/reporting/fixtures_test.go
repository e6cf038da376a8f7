package reporting

import (
	"time"

	"github.com/vfg2006/hangar-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func mes(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

type registroOpt func(*domain.RegistroDetalhado)

func withStatus(s domain.RegistroStatus) registroOpt {
	return func(r *domain.RegistroDetalhado) { r.Status = s }
}

func withUpdatedAt(t time.Time) registroOpt {
	return func(r *domain.RegistroDetalhado) { r.UpdatedAt = t }
}

func withValores(bruta, liquida, custo float64) registroOpt {
	return func(r *domain.RegistroDetalhado) {
		r.ReceitaBruta = bruta
		r.ReceitaLiquida = liquida
		r.CustoProjetado = custo
	}
}

func withProjeto(id, nome string) registroOpt {
	return func(r *domain.RegistroDetalhado) {
		r.ProjetoID = id
		r.Projeto.ID = id
		r.Projeto.Nome = nome
	}
}

func withCliente(id, nome string) registroOpt {
	return func(r *domain.RegistroDetalhado) {
		r.Projeto.ClienteID = id
		r.Cliente.ID = id
		r.Cliente.Nome = nome
	}
}

func withTier(id, nome string) registroOpt {
	return func(r *domain.RegistroDetalhado) {
		r.Cliente.TierID = id
		r.Tier.ID = id
		r.Tier.Nome = nome
	}
}

func withMetas(registro, projeto, cliente, tier *float64) registroOpt {
	return func(r *domain.RegistroDetalhado) {
		r.MarginMeta = registro
		r.Projeto.MarginMeta = projeto
		r.Cliente.MarginMeta = cliente
		r.Tier.MarginMeta = tier
	}
}

// newRegistro monta um registro planejado com hierarquia coerente
func newRegistro(id string, mesRef time.Time, opts ...registroOpt) domain.RegistroDetalhado {
	r := domain.RegistroDetalhado{
		RegistroMensal: domain.RegistroMensal{
			ID:        id,
			MesRef:    mesRef,
			Status:    domain.RegistroPlanejado,
			UpdatedAt: mesRef,
		},
	}
	withProjeto("p1", "Projeto 1")(&r)
	withCliente("c1", "Cliente 1")(&r)
	withTier("t1", "Tier 1")(&r)

	for _, opt := range opts {
		opt(&r)
	}
	return r
}
