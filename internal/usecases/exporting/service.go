package exporting

import (
	"github.com/vfg2006/hangar-api/infrastructure/repository"
)

type Service struct {
	registroRepo repository.RegistroRepository
	impostoRepo  repository.ImpostoRepository
	auditRepo    repository.AuditLogRepository
}

func NewService(registroRepo repository.RegistroRepository, impostoRepo repository.ImpostoRepository, auditRepo repository.AuditLogRepository) *Service {
	return &Service{
		registroRepo: registroRepo,
		impostoRepo:  impostoRepo,
		auditRepo:    auditRepo,
	}
}
