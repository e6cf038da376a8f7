package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

// scopeWhere restringe a consulta aos tiers visíveis. Uma lista vazia vira (1=0).
func scopeWhere(column string, scope domain.Scope) squirrel.Sqlizer {
	if scope.All {
		return squirrel.Expr("1=1")
	}
	return squirrel.Eq{column: []string(scope.TierIDs)}
}

// translateError converte erros do driver nos erros de domínio
func translateError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("erro ao %s: %w", action, domain.ErrNotFound)
	case postgres.IsUniqueViolation(err):
		return fmt.Errorf("erro ao %s: %w", action, domain.ErrConflict)
	case postgres.IsForeignKeyViolation(err):
		return fmt.Errorf("erro ao %s: %w: %v", action, domain.ErrConflict, err)
	default:
		return fmt.Errorf("erro ao %s: %w", action, err)
	}
}

// expectAffected devolve ErrNotFound quando nenhuma linha foi alterada
func expectAffected(res sql.Result, action string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao %s: %w", action, err)
	}
	if n == 0 {
		return fmt.Errorf("erro ao %s: %w", action, domain.ErrNotFound)
	}
	return nil
}
