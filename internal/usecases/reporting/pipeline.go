package reporting

import (
	"github.com/vfg2006/hangar-api/internal/domain"
)

type registroKey struct {
	projetoID string
	dia       string
}

func keyOf(r domain.RegistroDetalhado) registroKey {
	return registroKey{projetoID: r.ProjetoID, dia: r.MesRef.UTC().Format("2006-01-02")}
}

// newer compara dois registros do mesmo status. Empates de updatedAt são
// decididos pelo maior ID para que o resultado não dependa da ordem de entrada.
func newer(candidate, current domain.RegistroDetalhado) bool {
	if candidate.UpdatedAt.Equal(current.UpdatedAt) {
		return candidate.ID > current.ID
	}
	return candidate.UpdatedAt.After(current.UpdatedAt)
}

func supersedes(candidate, current domain.RegistroDetalhado) bool {
	candidateRealizado := candidate.Status == domain.RegistroRealizado
	currentRealizado := current.Status == domain.RegistroRealizado

	switch {
	case currentRealizado && !candidateRealizado:
		return false
	case !currentRealizado && candidateRealizado:
		return true
	default:
		return newer(candidate, current)
	}
}

// ApplyPipeline reduz os registros a um por (projeto, mês): realizado vence
// planejado e, dentro do mesmo status, vence o atualizado mais recentemente.
// A saída segue a ordem em que cada chave apareceu pela primeira vez.
func ApplyPipeline(registros []domain.RegistroDetalhado) []domain.RegistroDetalhado {
	chosen := make(map[registroKey]int, len(registros))
	out := make([]domain.RegistroDetalhado, 0, len(registros))

	for _, r := range registros {
		key := keyOf(r)
		idx, seen := chosen[key]
		if !seen {
			chosen[key] = len(out)
			out = append(out, r)
			continue
		}
		if supersedes(r, out[idx]) {
			out[idx] = r
		}
	}

	return out
}

// FilterByStatus mantém apenas os registros com o status informado
func FilterByStatus(registros []domain.RegistroDetalhado, status domain.RegistroStatus) []domain.RegistroDetalhado {
	out := make([]domain.RegistroDetalhado, 0, len(registros))
	for _, r := range registros {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// SelectStatus aplica o pipeline ou o filtro explícito de status
func SelectStatus(registros []domain.RegistroDetalhado, status domain.StatusFilter) []domain.RegistroDetalhado {
	switch status {
	case domain.StatusPlanejado:
		return FilterByStatus(registros, domain.RegistroPlanejado)
	case domain.StatusRealizado:
		return FilterByStatus(registros, domain.RegistroRealizado)
	default:
		return ApplyPipeline(registros)
	}
}
