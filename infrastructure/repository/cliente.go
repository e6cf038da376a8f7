//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"time"

	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const clientesTable = "clientes"

var clienteColumns = []string{"id", "tier_id", "nome", "logo_url", "margin_meta", "created_at", "updated_at"}

type ClienteRepository interface {
	ListClientes(ctx context.Context, tierID string, scope domain.Scope) ([]domain.Cliente, error)
	GetCliente(ctx context.Context, id string) (*domain.Cliente, error)
	CreateCliente(ctx context.Context, cliente *domain.Cliente) error
	UpdateCliente(ctx context.Context, cliente *domain.Cliente) error
	DeleteCliente(ctx context.Context, id string) error
}

type clienteRepository struct {
	conn postgres.Conn
}

func NewClienteRepository(conn postgres.Conn) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func scanCliente(row rowScanner) (domain.Cliente, error) {
	var c domain.Cliente
	err := row.Scan(&c.ID, &c.TierID, &c.Nome, &c.LogoURL, &c.MarginMeta, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clienteRepository) ListClientes(ctx context.Context, tierID string, scope domain.Scope) ([]domain.Cliente, error) {
	builder := psql.
		Select(clienteColumns...).
		From(clientesTable).
		Where(scopeWhere("tier_id", scope)).
		OrderBy("nome ASC")

	if tierID != "" {
		builder = builder.Where("tier_id = ?", tierID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar clientes")
	}
	defer rows.Close()

	clientes := []domain.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, translateError(err, "ler cliente")
		}
		clientes = append(clientes, c)
	}

	return clientes, rows.Err()
}

func (r *clienteRepository) GetCliente(ctx context.Context, id string) (*domain.Cliente, error) {
	query, args, err := psql.
		Select(clienteColumns...).
		From(clientesTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanCliente(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar cliente")
	}

	return &c, nil
}

func (r *clienteRepository) CreateCliente(ctx context.Context, cliente *domain.Cliente) error {
	now := time.Now().UTC()
	cliente.CreatedAt, cliente.UpdatedAt = now, now

	query, args, err := psql.
		Insert(clientesTable).
		Columns(clienteColumns...).
		Values(cliente.ID, cliente.TierID, cliente.Nome, cliente.LogoURL, cliente.MarginMeta, cliente.CreatedAt, cliente.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar cliente")
}

func (r *clienteRepository) UpdateCliente(ctx context.Context, cliente *domain.Cliente) error {
	cliente.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(clientesTable).
		Set("tier_id", cliente.TierID).
		Set("nome", cliente.Nome).
		Set("logo_url", cliente.LogoURL).
		Set("margin_meta", cliente.MarginMeta).
		Set("updated_at", cliente.UpdatedAt).
		Where("id = ?", cliente.ID).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "atualizar cliente")
	}
	return expectAffected(res, "atualizar cliente")
}

func (r *clienteRepository) DeleteCliente(ctx context.Context, id string) error {
	query, args, err := psql.Delete(clientesTable).Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "remover cliente")
	}
	return expectAffected(res, "remover cliente")
}
