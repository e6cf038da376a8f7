//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"time"

	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const projetosTable = "projetos"

var projetoColumns = []string{"p.id", "p.cliente_id", "p.nome", "p.status", "p.margin_meta", "p.created_at", "p.updated_at"}

type ProjetoRepository interface {
	ListProjetos(ctx context.Context, clienteID string, scope domain.Scope) ([]domain.Projeto, error)
	GetProjeto(ctx context.Context, id string) (*domain.Projeto, error)
	// GetProjetoTierID devolve o tier dono do projeto, usado nas checagens de acesso
	GetProjetoTierID(ctx context.Context, id string) (string, error)
	CreateProjeto(ctx context.Context, projeto *domain.Projeto) error
	UpdateProjeto(ctx context.Context, projeto *domain.Projeto) error
	DeleteProjeto(ctx context.Context, id string) error
}

type projetoRepository struct {
	conn postgres.Conn
}

func NewProjetoRepository(conn postgres.Conn) ProjetoRepository {
	return &projetoRepository{
		conn: conn,
	}
}

func scanProjeto(row rowScanner) (domain.Projeto, error) {
	var p domain.Projeto
	err := row.Scan(&p.ID, &p.ClienteID, &p.Nome, &p.Status, &p.MarginMeta, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *projetoRepository) ListProjetos(ctx context.Context, clienteID string, scope domain.Scope) ([]domain.Projeto, error) {
	builder := psql.
		Select(projetoColumns...).
		From(projetosTable + " p").
		Join(clientesTable + " c ON c.id = p.cliente_id").
		Where(scopeWhere("c.tier_id", scope)).
		OrderBy("p.nome ASC")

	if clienteID != "" {
		builder = builder.Where("p.cliente_id = ?", clienteID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar projetos")
	}
	defer rows.Close()

	projetos := []domain.Projeto{}
	for rows.Next() {
		p, err := scanProjeto(rows)
		if err != nil {
			return nil, translateError(err, "ler projeto")
		}
		projetos = append(projetos, p)
	}

	return projetos, rows.Err()
}

func (r *projetoRepository) GetProjeto(ctx context.Context, id string) (*domain.Projeto, error) {
	query, args, err := psql.
		Select(projetoColumns...).
		From(projetosTable + " p").
		Where("p.id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProjeto(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar projeto")
	}

	return &p, nil
}

func (r *projetoRepository) GetProjetoTierID(ctx context.Context, id string) (string, error) {
	query, args, err := psql.
		Select("c.tier_id").
		From(projetosTable + " p").
		Join(clientesTable + " c ON c.id = p.cliente_id").
		Where("p.id = ?", id).
		ToSql()
	if err != nil {
		return "", err
	}

	var tierID string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&tierID); err != nil {
		return "", translateError(err, "buscar tier do projeto")
	}

	return tierID, nil
}

func (r *projetoRepository) CreateProjeto(ctx context.Context, projeto *domain.Projeto) error {
	now := time.Now().UTC()
	projeto.CreatedAt, projeto.UpdatedAt = now, now

	query, args, err := psql.
		Insert(projetosTable).
		Columns("id", "cliente_id", "nome", "status", "margin_meta", "created_at", "updated_at").
		Values(projeto.ID, projeto.ClienteID, projeto.Nome, projeto.Status, projeto.MarginMeta, projeto.CreatedAt, projeto.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar projeto")
}

func (r *projetoRepository) UpdateProjeto(ctx context.Context, projeto *domain.Projeto) error {
	projeto.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(projetosTable).
		Set("cliente_id", projeto.ClienteID).
		Set("nome", projeto.Nome).
		Set("status", projeto.Status).
		Set("margin_meta", projeto.MarginMeta).
		Set("updated_at", projeto.UpdatedAt).
		Where("id = ?", projeto.ID).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "atualizar projeto")
	}
	return expectAffected(res, "atualizar projeto")
}

func (r *projetoRepository) DeleteProjeto(ctx context.Context, id string) error {
	query, args, err := psql.Delete(projetosTable).Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "remover projeto")
	}
	return expectAffected(res, "remover projeto")
}
