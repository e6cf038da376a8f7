package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
)

// ListImpostos aceita ?projeto_id=
func ListImpostos(service ImpostoService) http.HandlerFunc {
	return listHandler("erro ao listar impostos", func(r *http.Request, p domain.Principal) ([]domain.Imposto, error) {
		return service.ListImpostos(r.Context(), p, r.URL.Query().Get("projeto_id"))
	})
}

func GetImposto(service ImpostoService) http.HandlerFunc {
	return getHandler("erro ao obter imposto", service.GetImposto)
}

func CreateImposto(service ImpostoService) http.HandlerFunc {
	return createHandler("erro ao criar imposto", service.CreateImposto)
}

func UpdateImposto(service ImpostoService) http.HandlerFunc {
	return updateHandler("erro ao atualizar imposto", service.UpdateImposto)
}

func DeleteImposto(service ImpostoService) http.HandlerFunc {
	return deleteHandler("erro ao remover imposto", service.DeleteImposto)
}

// RecalcularImposto reaplica a alíquota aos registros do corpo {"registros": [...]}
func RecalcularImposto(service ImpostoService) http.HandlerFunc {
	return updateHandler("erro ao recalcular registros", service.RecalcularImposto)
}
