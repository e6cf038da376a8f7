//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const registrosTable = "registros_mensais"

var registroColumns = []string{
	"r.id", "r.projeto_id", "r.mes_ref", "r.receita_bruta", "r.imposto_id", "r.receita_liquida",
	"r.custo_projetado", "r.status", "r.observacoes", "r.margin_meta", "r.created_at", "r.updated_at",
}

var hierarquiaColumns = []string{
	"p.id", "p.cliente_id", "p.nome", "p.status", "p.margin_meta",
	"c.id", "c.tier_id", "c.nome", "c.logo_url", "c.margin_meta",
	"t.id", "t.nome", "t.margin_meta",
}

// CalcLiquida calcula a receita líquida de um registro a partir da bruta
type CalcLiquida func(receitaBruta float64) (float64, error)

type RegistroRepository interface {
	ListRegistros(ctx context.Context, filter domain.RegistroListFilter) ([]domain.RegistroMensal, error)
	GetRegistro(ctx context.Context, id string) (*domain.RegistroMensal, error)
	CreateRegistro(ctx context.Context, registro *domain.RegistroMensal) error
	UpdateRegistro(ctx context.Context, registro *domain.RegistroMensal) error
	DeleteRegistro(ctx context.Context, id string) error
	// ListDetalhados devolve os registros com projeto, cliente e tier. Ano zero não filtra por ano.
	ListDetalhados(ctx context.Context, filter domain.ReportFilter) ([]domain.RegistroDetalhado, error)
	// RecalcularReceitas aplica o imposto aos registros informados em uma única transação
	RecalcularReceitas(ctx context.Context, impostoID string, registroIDs []string, calc CalcLiquida) (int, error)
}

type registroRepository struct {
	conn postgres.Conn
}

func NewRegistroRepository(conn postgres.Conn) RegistroRepository {
	return &registroRepository{
		conn: conn,
	}
}

func scanRegistro(row rowScanner, extra ...any) (domain.RegistroMensal, error) {
	var r domain.RegistroMensal
	dest := append([]any{
		&r.ID, &r.ProjetoID, &r.MesRef, &r.ReceitaBruta, &r.ImpostoID, &r.ReceitaLiquida,
		&r.CustoProjetado, &r.Status, &r.Observacoes, &r.MarginMeta, &r.CreatedAt, &r.UpdatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return r, err
	}
	r.MesRef = r.MesRef.UTC()
	return r, nil
}

func scanRegistroDetalhado(row rowScanner) (domain.RegistroDetalhado, error) {
	var d domain.RegistroDetalhado
	reg, err := scanRegistro(row,
		&d.Projeto.ID, &d.Projeto.ClienteID, &d.Projeto.Nome, &d.Projeto.Status, &d.Projeto.MarginMeta,
		&d.Cliente.ID, &d.Cliente.TierID, &d.Cliente.Nome, &d.Cliente.LogoURL, &d.Cliente.MarginMeta,
		&d.Tier.ID, &d.Tier.Nome, &d.Tier.MarginMeta,
	)
	d.RegistroMensal = reg
	return d, err
}

func (r *registroRepository) ListRegistros(ctx context.Context, filter domain.RegistroListFilter) ([]domain.RegistroMensal, error) {
	builder := psql.
		Select(registroColumns...).
		From(registrosTable + " r").
		Join(projetosTable + " p ON p.id = r.projeto_id").
		Join(clientesTable + " c ON c.id = p.cliente_id").
		Where(scopeWhere("c.tier_id", filter.Scope)).
		OrderBy("r.mes_ref DESC", "r.updated_at DESC")

	if filter.ProjetoID != "" {
		builder = builder.Where("r.projeto_id = ?", filter.ProjetoID)
	}
	if filter.MesRef != nil {
		builder = builder.Where("r.mes_ref = ?", *filter.MesRef)
	}
	if filter.Status != "" {
		builder = builder.Where("r.status = ?", filter.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar registros")
	}
	defer rows.Close()

	registros := []domain.RegistroMensal{}
	for rows.Next() {
		reg, err := scanRegistro(rows)
		if err != nil {
			return nil, translateError(err, "ler registro")
		}
		registros = append(registros, reg)
	}

	return registros, rows.Err()
}

func (r *registroRepository) GetRegistro(ctx context.Context, id string) (*domain.RegistroMensal, error) {
	query, args, err := psql.
		Select(registroColumns...).
		From(registrosTable + " r").
		Where("r.id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	reg, err := scanRegistro(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar registro")
	}

	return &reg, nil
}

func (r *registroRepository) CreateRegistro(ctx context.Context, registro *domain.RegistroMensal) error {
	now := time.Now().UTC()
	registro.CreatedAt, registro.UpdatedAt = now, now

	query, args, err := psql.
		Insert(registrosTable).
		Columns("id", "projeto_id", "mes_ref", "receita_bruta", "imposto_id", "receita_liquida",
			"custo_projetado", "status", "observacoes", "margin_meta", "created_at", "updated_at").
		Values(registro.ID, registro.ProjetoID, registro.MesRef, registro.ReceitaBruta, registro.ImpostoID, registro.ReceitaLiquida,
			registro.CustoProjetado, registro.Status, registro.Observacoes, registro.MarginMeta, registro.CreatedAt, registro.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar registro")
}

func (r *registroRepository) UpdateRegistro(ctx context.Context, registro *domain.RegistroMensal) error {
	registro.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(registrosTable).
		Set("mes_ref", registro.MesRef).
		Set("receita_bruta", registro.ReceitaBruta).
		Set("imposto_id", registro.ImpostoID).
		Set("receita_liquida", registro.ReceitaLiquida).
		Set("custo_projetado", registro.CustoProjetado).
		Set("status", registro.Status).
		Set("observacoes", registro.Observacoes).
		Set("margin_meta", registro.MarginMeta).
		Set("updated_at", registro.UpdatedAt).
		Where("id = ?", registro.ID).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "atualizar registro")
	}
	return expectAffected(res, "atualizar registro")
}

func (r *registroRepository) DeleteRegistro(ctx context.Context, id string) error {
	query, args, err := psql.Delete(registrosTable).Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "remover registro")
	}
	return expectAffected(res, "remover registro")
}

// detalhadosQuery monta a consulta dos relatórios. O status não é filtrado aqui:
// o comparativo planejado x realizado precisa dos dois.
func detalhadosQuery(filter domain.ReportFilter) squirrel.SelectBuilder {
	builder := psql.
		Select(append(append([]string{}, registroColumns...), hierarquiaColumns...)...).
		From(registrosTable + " r").
		Join(projetosTable + " p ON p.id = r.projeto_id").
		Join(clientesTable + " c ON c.id = p.cliente_id").
		Join(tiersTable + " t ON t.id = c.tier_id").
		OrderBy("r.mes_ref ASC", "t.nome ASC", "c.nome ASC", "p.nome ASC", "r.updated_at ASC", "r.id ASC")

	if filter.Ano > 0 {
		inicio := time.Date(filter.Ano, time.January, 1, 0, 0, 0, 0, time.UTC)
		builder = builder.
			Where("r.mes_ref >= ?", inicio).
			Where("r.mes_ref < ?", inicio.AddDate(1, 0, 0))
	}
	if !filter.TierIDs.Empty() {
		builder = builder.Where(squirrel.Eq{"t.id": []string(filter.TierIDs)})
	}
	if !filter.ClienteIDs.Empty() {
		builder = builder.Where(squirrel.Eq{"c.id": []string(filter.ClienteIDs)})
	}
	if !filter.ProjetoIDs.Empty() {
		builder = builder.Where(squirrel.Eq{"p.id": []string(filter.ProjetoIDs)})
	}

	return builder
}

func (r *registroRepository) ListDetalhados(ctx context.Context, filter domain.ReportFilter) ([]domain.RegistroDetalhado, error) {
	query, args, err := detalhadosQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar registros detalhados")
	}
	defer rows.Close()

	registros := []domain.RegistroDetalhado{}
	for rows.Next() {
		d, err := scanRegistroDetalhado(rows)
		if err != nil {
			return nil, translateError(err, "ler registro detalhado")
		}
		registros = append(registros, d)
	}

	return registros, rows.Err()
}

func (r *registroRepository) RecalcularReceitas(ctx context.Context, impostoID string, registroIDs []string, calc CalcLiquida) (int, error) {
	updated := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Select("id", "receita_bruta").
			From(registrosTable).
			Where(squirrel.Eq{"id": registroIDs}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}

		brutas := make(map[string]float64, len(registroIDs))
		for rows.Next() {
			var id string
			var bruta float64
			if err := rows.Scan(&id, &bruta); err != nil {
				rows.Close()
				return err
			}
			brutas[id] = bruta
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		now := time.Now().UTC()
		for id, bruta := range brutas {
			liquida, err := calc(bruta)
			if err != nil {
				return fmt.Errorf("registro %s: %w", id, err)
			}

			update, args, err := psql.
				Update(registrosTable).
				Set("imposto_id", impostoID).
				Set("receita_liquida", liquida).
				Set("updated_at", now).
				Where("id = ?", id).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, update, args...); err != nil {
				return err
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, translateError(err, "recalcular receitas")
	}

	return updated, nil
}
