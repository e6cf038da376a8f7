package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
)

func ListTiers(service TierService) http.HandlerFunc {
	return listHandler("erro ao listar tiers", func(r *http.Request, p domain.Principal) ([]domain.Tier, error) {
		return service.ListTiers(r.Context(), p)
	})
}

func GetTier(service TierService) http.HandlerFunc {
	return getHandler("erro ao obter tier", service.GetTier)
}

func CreateTier(service TierService) http.HandlerFunc {
	return createHandler("erro ao criar tier", service.CreateTier)
}

func UpdateTier(service TierService) http.HandlerFunc {
	return updateHandler("erro ao atualizar tier", service.UpdateTier)
}

func DeleteTier(service TierService) http.HandlerFunc {
	return deleteHandler("erro ao remover tier", service.DeleteTier)
}
