package handler

import (
	"net/http"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/cadastro"
)

// ListRegistros aceita ?projeto_id=, ?mes_ref=YYYY-MM e ?status=
func ListRegistros(service RegistroService) http.HandlerFunc {
	return listHandler("erro ao listar registros", func(r *http.Request, p domain.Principal) ([]domain.RegistroMensal, error) {
		query := r.URL.Query()
		return service.ListRegistros(r.Context(), p, cadastro.RegistroQuery{
			ProjetoID: query.Get("projeto_id"),
			MesRef:    query.Get("mes_ref"),
			Status:    query.Get("status"),
		})
	})
}

func GetRegistro(service RegistroService) http.HandlerFunc {
	return getHandler("erro ao obter registro", service.GetRegistro)
}

func CreateRegistro(service RegistroService) http.HandlerFunc {
	return createHandler("erro ao criar registro", service.CreateRegistro)
}

func UpdateRegistro(service RegistroService) http.HandlerFunc {
	return updateHandler("erro ao atualizar registro", service.UpdateRegistro)
}

func DeleteRegistro(service RegistroService) http.HandlerFunc {
	return deleteHandler("erro ao remover registro", service.DeleteRegistro)
}
