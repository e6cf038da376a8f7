package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
)

// ListClientes aceita ?tier_id= para restringir a um tier
func ListClientes(service ClienteService) http.HandlerFunc {
	return listHandler("erro ao listar clientes", func(r *http.Request, p domain.Principal) ([]domain.Cliente, error) {
		return service.ListClientes(r.Context(), p, r.URL.Query().Get("tier_id"))
	})
}

func GetCliente(service ClienteService) http.HandlerFunc {
	return getHandler("erro ao obter cliente", service.GetCliente)
}

func CreateCliente(service ClienteService) http.HandlerFunc {
	return createHandler("erro ao criar cliente", service.CreateCliente)
}

func UpdateCliente(service ClienteService) http.HandlerFunc {
	return updateHandler("erro ao atualizar cliente", service.UpdateCliente)
}

func DeleteCliente(service ClienteService) http.HandlerFunc {
	return deleteHandler("erro ao remover cliente", service.DeleteCliente)
}
