//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"time"

	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const impostosTable = "impostos"

var impostoColumns = []string{"i.id", "i.projeto_id", "i.percentual", "i.vigencia_inicio", "i.vigencia_fim", "i.ativo", "i.created_at", "i.updated_at"}

type ImpostoRepository interface {
	ListImpostos(ctx context.Context, projetoID string, scope domain.Scope) ([]domain.Imposto, error)
	GetImposto(ctx context.Context, id string) (*domain.Imposto, error)
	CreateImposto(ctx context.Context, imposto *domain.Imposto) error
	UpdateImposto(ctx context.Context, imposto *domain.Imposto) error
	DeleteImposto(ctx context.Context, id string) error
	// DeactivateExpired desativa impostos cuja vigência terminou antes de now
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type impostoRepository struct {
	conn postgres.Conn
}

func NewImpostoRepository(conn postgres.Conn) ImpostoRepository {
	return &impostoRepository{
		conn: conn,
	}
}

func scanImposto(row rowScanner) (domain.Imposto, error) {
	var i domain.Imposto
	err := row.Scan(&i.ID, &i.ProjetoID, &i.Percentual, &i.VigenciaInicio, &i.VigenciaFim, &i.Ativo, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *impostoRepository) ListImpostos(ctx context.Context, projetoID string, scope domain.Scope) ([]domain.Imposto, error) {
	builder := psql.
		Select(impostoColumns...).
		From(impostosTable + " i").
		Join(projetosTable + " p ON p.id = i.projeto_id").
		Join(clientesTable + " c ON c.id = p.cliente_id").
		Where(scopeWhere("c.tier_id", scope)).
		OrderBy("i.vigencia_inicio DESC")

	if projetoID != "" {
		builder = builder.Where("i.projeto_id = ?", projetoID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar impostos")
	}
	defer rows.Close()

	impostos := []domain.Imposto{}
	for rows.Next() {
		i, err := scanImposto(rows)
		if err != nil {
			return nil, translateError(err, "ler imposto")
		}
		impostos = append(impostos, i)
	}

	return impostos, rows.Err()
}

func (r *impostoRepository) GetImposto(ctx context.Context, id string) (*domain.Imposto, error) {
	query, args, err := psql.
		Select(impostoColumns...).
		From(impostosTable + " i").
		Where("i.id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	i, err := scanImposto(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar imposto")
	}

	return &i, nil
}

func (r *impostoRepository) CreateImposto(ctx context.Context, imposto *domain.Imposto) error {
	now := time.Now().UTC()
	imposto.CreatedAt, imposto.UpdatedAt = now, now

	query, args, err := psql.
		Insert(impostosTable).
		Columns("id", "projeto_id", "percentual", "vigencia_inicio", "vigencia_fim", "ativo", "created_at", "updated_at").
		Values(imposto.ID, imposto.ProjetoID, imposto.Percentual, imposto.VigenciaInicio, imposto.VigenciaFim, imposto.Ativo, imposto.CreatedAt, imposto.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar imposto")
}

func (r *impostoRepository) UpdateImposto(ctx context.Context, imposto *domain.Imposto) error {
	imposto.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(impostosTable).
		Set("percentual", imposto.Percentual).
		Set("vigencia_inicio", imposto.VigenciaInicio).
		Set("vigencia_fim", imposto.VigenciaFim).
		Set("ativo", imposto.Ativo).
		Set("updated_at", imposto.UpdatedAt).
		Where("id = ?", imposto.ID).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "atualizar imposto")
	}
	return expectAffected(res, "atualizar imposto")
}

func (r *impostoRepository) DeleteImposto(ctx context.Context, id string) error {
	query, args, err := psql.Delete(impostosTable).Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "remover imposto")
	}
	return expectAffected(res, "remover imposto")
}

func (r *impostoRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.
		Update(impostosTable).
		Set("ativo", false).
		Set("updated_at", now).
		Where("ativo = ?", true).
		Where("vigencia_fim IS NOT NULL").
		Where("vigencia_fim < ?", now).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err, "desativar impostos vencidos")
	}

	return res.RowsAffected()
}
