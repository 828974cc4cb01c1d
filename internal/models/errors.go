package models

import "errors"

// Erros de domínio expostos pelo serviço e pelo repositório. Os handlers
// mapeiam cada um para o status HTTP correspondente via errors.Is.
var (
	ErrValidation      = errors.New("invalid contact data")
	ErrContactNotFound = errors.New("contact not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)
