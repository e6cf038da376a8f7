package cadastro

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

// ReportInvalidator invalida os relatórios em cache após escritas que alteram valores
type ReportInvalidator interface {
	Bump(ctx context.Context) error
}

type Repositories struct {
	Tiers     repository.TierRepository
	Clientes  repository.ClienteRepository
	Projetos  repository.ProjetoRepository
	Impostos  repository.ImpostoRepository
	Registros repository.RegistroRepository
}

// Service concentra o cadastro da hierarquia Tier → Cliente → Projeto e dos
// impostos e registros mensais.
type Service struct {
	tierRepo     repository.TierRepository
	clienteRepo  repository.ClienteRepository
	projetoRepo  repository.ProjetoRepository
	impostoRepo  repository.ImpostoRepository
	registroRepo repository.RegistroRepository
	reports      ReportInvalidator
	validate     *validator.Validate
	newID        func() (string, error)
}

func NewService(repos Repositories, reports ReportInvalidator) *Service {
	return &Service{
		tierRepo:     repos.Tiers,
		clienteRepo:  repos.Clientes,
		projetoRepo:  repos.Projetos,
		impostoRepo:  repos.Impostos,
		registroRepo: repos.Registros,
		reports:      reports,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		newID:        utils.GenerateID,
	}
}

func (s *Service) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: campos inválidos: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func required(field string, present bool) error {
	if present {
		return nil
	}
	return fmt.Errorf("%w: %s é obrigatório", domain.ErrInvalidInput, field)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func (s *Service) id() (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar identificador: %w", err)
	}
	return id, nil
}

// invalidateReports não falha a escrita: no pior caso o relatório expira pelo TTL
func (s *Service) invalidateReports(ctx context.Context) {
	if s.reports == nil {
		return
	}
	if err := s.reports.Bump(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("cadastro: erro ao invalidar cache de relatórios")
	}
}
