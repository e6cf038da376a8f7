package handler

import (
	"context"

	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/cadastro"
)

type TierService interface {
	ListTiers(ctx context.Context, p domain.Principal) ([]domain.Tier, error)
	GetTier(ctx context.Context, p domain.Principal, id string) (*domain.Tier, error)
	CreateTier(ctx context.Context, p domain.Principal, input domain.TierInput) (*domain.Tier, error)
	UpdateTier(ctx context.Context, p domain.Principal, id string, input domain.TierInput) (*domain.Tier, error)
	DeleteTier(ctx context.Context, p domain.Principal, id string) error
}

type ClienteService interface {
	ListClientes(ctx context.Context, p domain.Principal, tierID string) ([]domain.Cliente, error)
	GetCliente(ctx context.Context, p domain.Principal, id string) (*domain.Cliente, error)
	CreateCliente(ctx context.Context, p domain.Principal, input domain.ClienteInput) (*domain.Cliente, error)
	UpdateCliente(ctx context.Context, p domain.Principal, id string, input domain.ClienteInput) (*domain.Cliente, error)
	DeleteCliente(ctx context.Context, p domain.Principal, id string) error
}

type ProjetoService interface {
	ListProjetos(ctx context.Context, p domain.Principal, clienteID string) ([]domain.Projeto, error)
	GetProjeto(ctx context.Context, p domain.Principal, id string) (*domain.Projeto, error)
	CreateProjeto(ctx context.Context, p domain.Principal, input domain.ProjetoInput) (*domain.Projeto, error)
	UpdateProjeto(ctx context.Context, p domain.Principal, id string, input domain.ProjetoInput) (*domain.Projeto, error)
	DeleteProjeto(ctx context.Context, p domain.Principal, id string) error
}

type ImpostoService interface {
	ListImpostos(ctx context.Context, p domain.Principal, projetoID string) ([]domain.Imposto, error)
	GetImposto(ctx context.Context, p domain.Principal, id string) (*domain.Imposto, error)
	CreateImposto(ctx context.Context, p domain.Principal, input domain.ImpostoInput) (*domain.Imposto, error)
	UpdateImposto(ctx context.Context, p domain.Principal, id string, input domain.ImpostoInput) (*domain.Imposto, error)
	DeleteImposto(ctx context.Context, p domain.Principal, id string) error
	RecalcularImposto(ctx context.Context, p domain.Principal, id string, input domain.RecalcularInput) (*cadastro.RecalcularResult, error)
}

type RegistroService interface {
	ListRegistros(ctx context.Context, p domain.Principal, q cadastro.RegistroQuery) ([]domain.RegistroMensal, error)
	GetRegistro(ctx context.Context, p domain.Principal, id string) (*domain.RegistroMensal, error)
	CreateRegistro(ctx context.Context, p domain.Principal, input domain.RegistroInput) (*domain.RegistroMensal, error)
	UpdateRegistro(ctx context.Context, p domain.Principal, id string, input domain.RegistroInput) (*domain.RegistroMensal, error)
	DeleteRegistro(ctx context.Context, p domain.Principal, id string) error
}
