package access

import (
	"slices"

	"github.com/vfg2006/hangar-api/internal/domain"
)

// ScopeFor devolve os tiers que o usuário pode ver. Administradores veem tudo.
func ScopeFor(p domain.Principal) domain.Scope {
	if p.IsAdmin() {
		return domain.Scope{All: true}
	}
	return domain.Scope{TierIDs: slices.Clone(p.TierIDs)}
}

// NarrowReport restringe o filtro de relatório aos tiers do usuário. Retorna
// false quando não sobra nenhum tier visível, caso em que o resultado é vazio.
func NarrowReport(p domain.Principal, f domain.ReportFilter) (domain.ReportFilter, bool) {
	scope := ScopeFor(p)
	if scope.All {
		return f, true
	}
	if scope.TierIDs.Empty() {
		return f, false
	}

	if f.TierIDs.Empty() {
		f.TierIDs = scope.TierIDs
		return f, true
	}

	f.TierIDs = f.TierIDs.Intersect(scope.TierIDs)
	return f, !f.TierIDs.Empty()
}

// CheckTier falha com ErrForbidden quando o tier está fora do escopo do usuário
func CheckTier(p domain.Principal, tierID string) error {
	if ScopeFor(p).Allows(tierID) {
		return nil
	}
	return domain.ErrForbidden
}

// RequireAdmin falha com ErrForbidden para usuários comuns
func RequireAdmin(p domain.Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}
