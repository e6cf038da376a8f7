package apiErrors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
)

type codedErr struct{ code string }

func (e codedErr) Error() string   { return "erro com código" }
func (e codedErr) APICode() string { return e.code }

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"entrada inválida", fmt.Errorf("mes_ref: %w", domain.ErrInvalidInput), ErrInvalidRequest},
		{"não encontrado", fmt.Errorf("erro ao buscar tier: %w", domain.ErrNotFound), ErrResourceNotFound},
		{"proibido", domain.ErrForbidden, ErrInsufficientPrivilege},
		{"conflito", fmt.Errorf("erro ao criar cliente: %w", domain.ErrConflict), ErrResourceConflict},
		{"erro com código próprio", fmt.Errorf("login: %w", codedErr{code: ErrUserDisabled}), ErrUserDisabled},
		{"erro desconhecido", fmt.Errorf("conexão recusada"), ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFor(tt.err))
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	t.Run("não encontrado vira 404 com a mensagem", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteDomainError(rec, fmt.Errorf("erro ao buscar projeto: %w", domain.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrResourceNotFound, body.Code)
		assert.Contains(t, body.Message, "projeto")
	})

	t.Run("erro interno esconde a mensagem original", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteDomainError(rec, fmt.Errorf("pq: senha incorreta para usuário hangar"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "senha")
	})
}

func TestStatusFor_CodigoDesconhecido(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusTooManyRequests, StatusFor(ErrRateLimited))
}
