//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"time"

	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const tiersTable = "tiers"

var tierColumns = []string{"id", "nome", "margin_meta", "created_at", "updated_at"}

type TierRepository interface {
	ListTiers(ctx context.Context, scope domain.Scope) ([]domain.Tier, error)
	GetTier(ctx context.Context, id string) (*domain.Tier, error)
	CreateTier(ctx context.Context, tier *domain.Tier) error
	UpdateTier(ctx context.Context, tier *domain.Tier) error
	DeleteTier(ctx context.Context, id string) error
}

type tierRepository struct {
	conn postgres.Conn
}

func NewTierRepository(conn postgres.Conn) TierRepository {
	return &tierRepository{
		conn: conn,
	}
}

func scanTier(row rowScanner) (domain.Tier, error) {
	var t domain.Tier
	err := row.Scan(&t.ID, &t.Nome, &t.MarginMeta, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *tierRepository) ListTiers(ctx context.Context, scope domain.Scope) ([]domain.Tier, error) {
	query, args, err := psql.
		Select(tierColumns...).
		From(tiersTable).
		Where(scopeWhere("id", scope)).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar tiers")
	}
	defer rows.Close()

	tiers := []domain.Tier{}
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, translateError(err, "ler tier")
		}
		tiers = append(tiers, t)
	}

	return tiers, rows.Err()
}

func (r *tierRepository) GetTier(ctx context.Context, id string) (*domain.Tier, error) {
	query, args, err := psql.
		Select(tierColumns...).
		From(tiersTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTier(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "buscar tier")
	}

	return &t, nil
}

func (r *tierRepository) CreateTier(ctx context.Context, tier *domain.Tier) error {
	now := time.Now().UTC()
	tier.CreatedAt, tier.UpdatedAt = now, now

	query, args, err := psql.
		Insert(tiersTable).
		Columns(tierColumns...).
		Values(tier.ID, tier.Nome, tier.MarginMeta, tier.CreatedAt, tier.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar tier")
}

func (r *tierRepository) UpdateTier(ctx context.Context, tier *domain.Tier) error {
	tier.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(tiersTable).
		Set("nome", tier.Nome).
		Set("margin_meta", tier.MarginMeta).
		Set("updated_at", tier.UpdatedAt).
		Where("id = ?", tier.ID).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "atualizar tier")
	}
	return expectAffected(res, "atualizar tier")
}

func (r *tierRepository) DeleteTier(ctx context.Context, id string) error {
	query, args, err := psql.Delete(tiersTable).Where("id = ?", id).ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, "remover tier")
	}
	return expectAffected(res, "remover tier")
}
