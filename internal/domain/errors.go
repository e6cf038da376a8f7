package domain

import "errors"

// Erros de domínio compartilhados entre casos de uso e handlers
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("registro não encontrado")
	ErrForbidden    = errors.New("acesso negado")
	ErrConflict     = errors.New("conflito com dados existentes")
)
