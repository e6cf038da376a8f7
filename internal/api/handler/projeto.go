package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
)

// ListProjetos aceita ?cliente_id=
func ListProjetos(service ProjetoService) http.HandlerFunc {
	return listHandler("erro ao listar projetos", func(r *http.Request, p domain.Principal) ([]domain.Projeto, error) {
		return service.ListProjetos(r.Context(), p, r.URL.Query().Get("cliente_id"))
	})
}

func GetProjeto(service ProjetoService) http.HandlerFunc {
	return getHandler("erro ao obter projeto", service.GetProjeto)
}

func CreateProjeto(service ProjetoService) http.HandlerFunc {
	return createHandler("erro ao criar projeto", service.CreateProjeto)
}

func UpdateProjeto(service ProjetoService) http.HandlerFunc {
	return updateHandler("erro ao atualizar projeto", service.UpdateProjeto)
}

func DeleteProjeto(service ProjetoService) http.HandlerFunc {
	return deleteHandler("erro ao remover projeto", service.DeleteProjeto)
}
