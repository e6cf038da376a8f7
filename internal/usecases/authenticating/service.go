package authenticating

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	LoadPrincipal(ctx context.Context, claims *domain.Claims) (domain.Principal, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)

	ListUsers(ctx context.Context, actor domain.Principal) ([]domain.UserSummary, error)
	ApproveUser(ctx context.Context, actor domain.Principal, userID string) error
	PromoteUser(ctx context.Context, actor domain.Principal, userID string) error
	SetUserTiers(ctx context.Context, actor domain.Principal, userID string, req domain.SetUserTiersRequest) error
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type Service struct {
	userRepo repository.UserRepository
	tierRepo repository.TierRepository
	cfg      config.Auth
	validate *validator.Validate
	now      func() time.Time
	newID    func() (string, error)
}

func NewService(userRepo repository.UserRepository, tierRepo repository.TierRepository, cfg config.Auth) *Service {
	return &Service{
		userRepo: userRepo,
		tierRepo: tierRepo,
		cfg:      cfg,
		validate: validator.New(),
		now:      time.Now,
		newID:    utils.GenerateID,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Signup cria o usuário. O primeiro usuário do sistema vira administrador ativo;
// os demais ficam pendentes até a aprovação de um administrador.
func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	req.Email = handleEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email válido e senha com ao menos 6 caracteres são obrigatórios")
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar usuários")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para usuário")
	}

	user := &domain.User{
		ID:           id,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusPending,
		TierIDs:      []string{},
	}
	if total == 0 {
		user.Role = domain.RoleAdmin
		user.Status = domain.UserStatusActive
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	log.ForContext(ctx).Infof("auth: usuário %s cadastrado com papel %s e status %s", user.ID, user.Role, user.Status)
	return user, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if user.Status != domain.UserStatusActive {
		return nil, NewUserAuthError(ErrUserPending, apiErrors.ErrUserDisabled, user.ID, "Conta aguardando aprovação de um administrador")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	now := s.now().UTC()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("auth: erro ao registrar último login do usuário %s", user.ID)
	} else {
		user.LastLoginAt = &now
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

// LoadPrincipal relê o usuário a cada requisição: papel, status e tiers valem
// imediatamente após uma alteração administrativa.
func (s *Service) LoadPrincipal(ctx context.Context, claims *domain.Claims) (domain.Principal, error) {
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Usuário do token não existe mais")
		}
		return domain.Principal{}, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao carregar usuário")
	}

	if user.Status != domain.UserStatusActive {
		return domain.Principal{}, NewUserAuthError(ErrUserPending, apiErrors.ErrUserDisabled, user.ID, "Conta aguardando aprovação de um administrador")
	}

	return domain.Principal{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		Status:  user.Status,
		TierIDs: domain.IDList(user.TierIDs),
	}, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("auth: erro ao buscar perfil do usuário %s", userID)
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, actor domain.Principal) ([]domain.UserSummary, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx)
}

func (s *Service) newAudit(actor domain.Principal, userID string, action domain.AuditAction, metadata map[string]any) (*domain.AuditLog, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do log de auditoria: %w", err)
	}

	target := userID
	return &domain.AuditLog{
		ID:           id,
		ActorID:      actor.UserID,
		ActorEmail:   actor.Email,
		TargetUserID: &target,
		Action:       action,
		Metadata:     metadata,
		CreatedAt:    s.now().UTC(),
	}, nil
}

func (s *Service) ApproveUser(ctx context.Context, actor domain.Principal, userID string) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}

	audit, err := s.newAudit(actor, userID, domain.AuditApproveUser, nil)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateStatus(ctx, userID, domain.UserStatusActive, audit); err != nil {
		return err
	}

	log.ForContext(ctx).Infof("auth: usuário %s aprovado por %s", userID, actor.UserID)
	return nil
}

func (s *Service) PromoteUser(ctx context.Context, actor domain.Principal, userID string) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}

	audit, err := s.newAudit(actor, userID, domain.AuditPromoteAdmin, nil)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(ctx, userID, domain.RoleAdmin, audit); err != nil {
		return err
	}

	log.ForContext(ctx).Infof("auth: usuário %s promovido a administrador por %s", userID, actor.UserID)
	return nil
}

// SetUserTiers substitui os tiers do usuário. Tiers inexistentes são rejeitados.
func (s *Service) SetUserTiers(ctx context.Context, actor domain.Principal, userID string, req domain.SetUserTiersRequest) error {
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: tier_ids inválidos", domain.ErrInvalidInput)
	}

	tierIDs := make([]string, 0, len(req.TierIDs))
	for _, id := range req.TierIDs {
		if !slices.Contains(tierIDs, id) {
			tierIDs = append(tierIDs, id)
		}
	}

	known, err := s.tierRepo.ListTiers(ctx, domain.Scope{All: true})
	if err != nil {
		return err
	}
	for _, id := range tierIDs {
		if !slices.ContainsFunc(known, func(t domain.Tier) bool { return t.ID == id }) {
			return fmt.Errorf("%w: tier %s não existe", domain.ErrInvalidInput, id)
		}
	}

	audit, err := s.newAudit(actor, userID, domain.AuditSetUserTiers, map[string]any{"tier_ids": tierIDs})
	if err != nil {
		return err
	}
	if err := s.userRepo.SetUserTiers(ctx, userID, tierIDs, audit); err != nil {
		return err
	}

	log.ForContext(ctx).Infof("auth: tiers do usuário %s definidos por %s: %v", userID, actor.UserID, tierIDs)
	return nil
}
