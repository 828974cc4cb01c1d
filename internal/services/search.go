package services

import (
	"strings"

	"contacts-api/internal/models"
)

// MatchesQuery verifica se o contato contém a consulta como substring
// (sem diferenciar maiúsculas) no primeiro nome, sobrenome ou e-mail.
// Consulta vazia casa com qualquer contato.
func MatchesQuery(contact *models.Contact, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(contact.FirstName), q) ||
		strings.Contains(strings.ToLower(contact.LastName), q) ||
		strings.Contains(strings.ToLower(contact.Email), q)
}
