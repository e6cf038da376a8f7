package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

type UserStatus string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"

	UserStatusActive  UserStatus = "active"
	UserStatusPending UserStatus = "pending"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         *string    `json:"name"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	TierIDs      []string   `json:"tier_ids"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserTier struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// UserSummary é a visão de usuário exibida na administração
type UserSummary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Tiers     []UserTier `json:"tiers"`
}

type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SetUserTiersRequest struct {
	TierIDs []string `json:"tier_ids" validate:"dive,required"`
}

// Claims é o conteúdo do token. Papel e tiers não vão no token: são lidos do
// banco a cada requisição para que aprovações e revogações valham na hora.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Principal é o usuário autenticado da requisição
type Principal struct {
	UserID  string
	Email   string
	Name    *string
	Role    UserRole
	Status  UserStatus
	TierIDs IDList
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
