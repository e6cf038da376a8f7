package authenticating

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var agora = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository, *mocks.MockTierRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	tierRepo := mocks.NewMockTierRepository(ctrl)

	s := NewService(userRepo, tierRepo, config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour})
	s.now = func() time.Time { return agora }
	s.newID = func() (string, error) { return "id-gerado", nil }
	return s, userRepo, tierRepo
}

func hash(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func authCode(t *testing.T, err error) string {
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

var naoEncontrado = fmt.Errorf("erro ao buscar usuário por email: %w", domain.ErrNotFound)

func TestService_Signup(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.SignupRequest
		setup    func(u *mocks.MockUserRepository)
		wantCode string
		validate func(t *testing.T, user *domain.User)
	}{
		{
			name: "primeiro usuário vira admin ativo",
			req:  domain.SignupRequest{Email: " Ana@Example.com ", Password: "segredo"},
			setup: func(u *mocks.MockUserRepository) {
				u.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(nil, naoEncontrado)
				u.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
				u.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, user *domain.User) {
				assert.Equal(t, "ana@example.com", user.Email)
				assert.Equal(t, domain.RoleAdmin, user.Role)
				assert.Equal(t, domain.UserStatusActive, user.Status)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("segredo")))
			},
		},
		{
			name: "demais usuários ficam pendentes",
			req:  domain.SignupRequest{Email: "bia@example.com", Password: "segredo"},
			setup: func(u *mocks.MockUserRepository) {
				u.EXPECT().GetUserByEmail(gomock.Any(), "bia@example.com").Return(nil, naoEncontrado)
				u.EXPECT().CountUsers(gomock.Any()).Return(3, nil)
				u.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, user *domain.User) {
				assert.Equal(t, domain.RoleUser, user.Role)
				assert.Equal(t, domain.UserStatusPending, user.Status)
			},
		},
		{
			name: "email duplicado",
			req:  domain.SignupRequest{Email: "ana@example.com", Password: "segredo"},
			setup: func(u *mocks.MockUserRepository) {
				u.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&domain.User{ID: "u1"}, nil)
			},
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name:     "senha curta",
			req:      domain.SignupRequest{Email: "ana@example.com", Password: "123"},
			setup:    func(*mocks.MockUserRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "email inválido",
			req:      domain.SignupRequest{Email: "ana", Password: "segredo"},
			setup:    func(*mocks.MockUserRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, userRepo, _ := newTestService(t)
			tt.setup(userRepo)

			user, err := s.Signup(context.Background(), tt.req)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, authCode(t, err))
				return
			}
			require.NoError(t, err)
			tt.validate(t, user)
		})
	}
}

func TestService_Login(t *testing.T) {
	ativo := &domain.User{ID: "u1", Email: "ana@example.com", PasswordHash: hash(t, "segredo"), Role: domain.RoleUser, Status: domain.UserStatusActive}
	pendente := &domain.User{ID: "u2", Email: "bia@example.com", PasswordHash: hash(t, "segredo"), Role: domain.RoleUser, Status: domain.UserStatusPending}

	t.Run("credenciais corretas geram token válido", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(ativo, nil)
		userRepo.EXPECT().TouchLastLogin(gomock.Any(), "u1", agora).Return(nil)

		res, err := s.Login(context.Background(), domain.LoginRequest{Email: "ANA@example.com", Password: "segredo"})
		require.NoError(t, err)
		require.NotNil(t, res.User.LastLoginAt)

		claims, err := s.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, agora.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("senha errada", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(ativo, nil)

		_, err := s.Login(context.Background(), domain.LoginRequest{Email: "ana@example.com", Password: "errada"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
	})

	t.Run("usuário inexistente não revela o motivo", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ze@example.com").Return(nil, naoEncontrado)

		_, err := s.Login(context.Background(), domain.LoginRequest{Email: "ze@example.com", Password: "segredo"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário pendente não entra", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().GetUserByEmail(gomock.Any(), "bia@example.com").Return(pendente, nil)

		_, err := s.Login(context.Background(), domain.LoginRequest{Email: "bia@example.com", Password: "segredo"})
		assert.ErrorIs(t, err, ErrUserPending)
		assert.True(t, IsCredentialsError(err))
	})
}

func TestService_ValidateToken(t *testing.T) {
	s, _, _ := newTestService(t)

	t.Run("token expirado", func(t *testing.T) {
		token, err := s.generateJWT(&domain.User{ID: "u1"})
		require.NoError(t, err)

		s.now = func() time.Time { return agora.Add(2 * time.Hour) }
		defer func() { s.now = func() time.Time { return agora } }()

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinado com outro segredo", func(t *testing.T) {
		claims := domain.Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(agora.Add(time.Hour))}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outro"))
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := s.ValidateToken("abc.def.ghi")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_LoadPrincipal(t *testing.T) {
	s, userRepo, _ := newTestService(t)

	userRepo.EXPECT().GetUserByID(gomock.Any(), "u1").Return(&domain.User{
		ID: "u1", Email: "ana@example.com", Role: domain.RoleUser, Status: domain.UserStatusActive, TierIDs: []string{"t1", "t2"},
	}, nil)
	p, err := s.LoadPrincipal(context.Background(), &domain.Claims{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, domain.IDList{"t1", "t2"}, p.TierIDs)
	assert.False(t, p.IsAdmin())

	userRepo.EXPECT().GetUserByID(gomock.Any(), "u2").Return(&domain.User{ID: "u2", Status: domain.UserStatusPending}, nil)
	_, err = s.LoadPrincipal(context.Background(), &domain.Claims{UserID: "u2"})
	assert.ErrorIs(t, err, ErrUserPending)

	userRepo.EXPECT().GetUserByID(gomock.Any(), "u3").Return(nil, fmt.Errorf("erro: %w", domain.ErrNotFound))
	_, err = s.LoadPrincipal(context.Background(), &domain.Claims{UserID: "u3"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_AdminActions(t *testing.T) {
	admin := domain.Principal{UserID: "adm", Email: "adm@example.com", Role: domain.RoleAdmin}
	comum := domain.Principal{UserID: "u1", Role: domain.RoleUser}

	t.Run("aprovar grava auditoria", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().
			UpdateStatus(gomock.Any(), "u9", domain.UserStatusActive, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ domain.UserStatus, audit *domain.AuditLog) error {
				assert.Equal(t, domain.AuditApproveUser, audit.Action)
				assert.Equal(t, "adm", audit.ActorID)
				assert.Equal(t, "u9", *audit.TargetUserID)
				return nil
			})

		require.NoError(t, s.ApproveUser(context.Background(), admin, "u9"))
	})

	t.Run("promover", func(t *testing.T) {
		s, userRepo, _ := newTestService(t)
		userRepo.EXPECT().UpdateRole(gomock.Any(), "u9", domain.RoleAdmin, gomock.Any()).Return(nil)

		require.NoError(t, s.PromoteUser(context.Background(), admin, "u9"))
	})

	t.Run("usuário comum não administra", func(t *testing.T) {
		s, _, _ := newTestService(t)

		assert.ErrorIs(t, s.ApproveUser(context.Background(), comum, "u9"), domain.ErrForbidden)
		assert.ErrorIs(t, s.PromoteUser(context.Background(), comum, "u9"), domain.ErrForbidden)
		_, err := s.ListUsers(context.Background(), comum)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("definir tiers remove duplicados e registra metadados", func(t *testing.T) {
		s, userRepo, tierRepo := newTestService(t)
		tierRepo.EXPECT().ListTiers(gomock.Any(), domain.Scope{All: true}).Return([]domain.Tier{{ID: "t1"}, {ID: "t2"}}, nil)
		userRepo.EXPECT().
			SetUserTiers(gomock.Any(), "u9", []string{"t1", "t2"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ []string, audit *domain.AuditLog) error {
				assert.Equal(t, domain.AuditSetUserTiers, audit.Action)
				assert.Equal(t, []string{"t1", "t2"}, audit.Metadata["tier_ids"])
				return nil
			})

		err := s.SetUserTiers(context.Background(), admin, "u9", domain.SetUserTiersRequest{TierIDs: []string{"t1", "t2", "t1"}})
		require.NoError(t, err)
	})

	t.Run("tier inexistente", func(t *testing.T) {
		s, _, tierRepo := newTestService(t)
		tierRepo.EXPECT().ListTiers(gomock.Any(), gomock.Any()).Return([]domain.Tier{{ID: "t1"}}, nil)

		err := s.SetUserTiers(context.Background(), admin, "u9", domain.SetUserTiersRequest{TierIDs: []string{"t7"}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("lista vazia limpa os tiers", func(t *testing.T) {
		s, userRepo, tierRepo := newTestService(t)
		tierRepo.EXPECT().ListTiers(gomock.Any(), gomock.Any()).Return(nil, nil)
		userRepo.EXPECT().SetUserTiers(gomock.Any(), "u9", []string{}, gomock.Any()).Return(nil)

		require.NoError(t, s.SetUserTiers(context.Background(), admin, "u9", domain.SetUserTiersRequest{}))
	})
}
