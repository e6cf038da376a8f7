//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/internal/domain"
)

const (
	usersTable     = "users"
	userTiersTable = "user_tiers"
)

var userColumns = []string{"id", "email", "name", "password_hash", "role", "status", "last_login_at", "created_at", "updated_at"}

type UserRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
	// As alterações administrativas gravam o log de auditoria na mesma transação
	UpdateStatus(ctx context.Context, userID string, status domain.UserStatus, audit *domain.AuditLog) error
	UpdateRole(ctx context.Context, userID string, role domain.UserRole, audit *domain.AuditLog) error
	SetUserTiers(ctx context.Context, userID string, tierIDs []string, audit *domain.AuditLog) error
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, translateError(err, "contar usuários")
	}
	return count, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := psql.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.Status, user.LastLoginAt, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "criar usuário")
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Sqlizer, action string) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, action)
	}

	user.TierIDs, err = r.userTierIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email}, "buscar usuário por email")
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID}, "buscar usuário")
}

func (r *userRepository) userTierIDs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := psql.
		Select("tier_id").
		From(userTiersTable).
		Where("user_id = ?", userID).
		OrderBy("tier_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "buscar tiers do usuário")
	}
	defer rows.Close()

	tierIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, translateError(err, "ler tier do usuário")
		}
		tierIDs = append(tierIDs, id)
	}
	return tierIDs, rows.Err()
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	query, args, err := psql.
		Select("u.id", "u.email", "u.name", "u.role", "u.status", "u.created_at", "t.id", "t.nome").
		From(usersTable + " u").
		LeftJoin(userTiersTable + " ut ON ut.user_id = u.id").
		LeftJoin(tiersTable + " t ON t.id = ut.tier_id").
		OrderBy("u.created_at DESC", "u.id ASC", "t.nome ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "listar usuários")
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	index := make(map[string]int)
	for rows.Next() {
		var u domain.UserSummary
		var tierID, tierNome sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &tierID, &tierNome); err != nil {
			return nil, translateError(err, "ler usuário")
		}

		i, ok := index[u.ID]
		if !ok {
			u.Tiers = []domain.UserTier{}
			users = append(users, u)
			i = len(users) - 1
			index[u.ID] = i
		}
		if tierID.Valid {
			users[i].Tiers = append(users[i].Tiers, domain.UserTier{ID: tierID.String, Nome: tierNome.String})
		}
	}

	return users, rows.Err()
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	query, args, err := psql.Update(usersTable).Set("last_login_at", at).Where("id = ?", userID).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return translateError(err, "registrar último login")
}

func (r *userRepository) updateWithAudit(ctx context.Context, userID string, set map[string]any, audit *domain.AuditLog, action string) error {
	set["updated_at"] = time.Now().UTC()

	return translateError(r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.Update(usersTable).SetMap(set).Where("id = ?", userID).ToSql()
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return sql.ErrNoRows
		}

		return insertAuditLog(ctx, tx, audit)
	}), action)
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID string, status domain.UserStatus, audit *domain.AuditLog) error {
	return r.updateWithAudit(ctx, userID, map[string]any{"status": status}, audit, "atualizar status do usuário")
}

func (r *userRepository) UpdateRole(ctx context.Context, userID string, role domain.UserRole, audit *domain.AuditLog) error {
	return r.updateWithAudit(ctx, userID, map[string]any{"role": role}, audit, "atualizar papel do usuário")
}

func (r *userRepository) SetUserTiers(ctx context.Context, userID string, tierIDs []string, audit *domain.AuditLog) error {
	return translateError(r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}

		del, args, err := psql.Delete(userTiersTable).Where("user_id = ?", userID).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, del, args...); err != nil {
			return err
		}

		if len(tierIDs) > 0 {
			insert := psql.Insert(userTiersTable).Columns("user_id", "tier_id")
			for _, tierID := range tierIDs {
				insert = insert.Values(userID, tierID)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}

		return insertAuditLog(ctx, tx, audit)
	}), "definir tiers do usuário")
}
