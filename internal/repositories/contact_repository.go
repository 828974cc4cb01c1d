package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"contacts-api/internal/models"
	"contacts-api/internal/utils"
	"contacts-api/internal/wsnotify"
)

type SQLContactRepository struct {
	db *sql.DB
}

func NewSQLContactRepository(db *sql.DB) *SQLContactRepository {
	return &SQLContactRepository{db: db}
}

// isDuplicateEmail reconhece a violação da constraint UNIQUE de e-mail nos
// dois drivers suportados (sqlite e mysql).
func isDuplicateEmail(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: contacts.email") ||
		strings.Contains(msg, "Error 1062") ||
		strings.Contains(msg, "Duplicate entry")
}

func (r *SQLContactRepository) Save(contact *models.Contact) error {
	query := `
		INSERT INTO contacts (
			first_name, last_name, email, phone_number, birthday, extra_data
		) VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.PhoneNumber,
		contact.Birthday.String(),
		utils.NullString(contact.ExtraData),
	)

	if isDuplicateEmail(err) {
		return models.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("error saving contact: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error getting last insert id: %v", err)
	}

	contact.ID = int(id)

	wsnotify.SendContactEvent(wsnotify.ContactCreated, contact)
	return nil
}

func (r *SQLContactRepository) GetByID(id int) (*models.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, birthday, extra_data
		FROM contacts
		WHERE id = ?`

	contact, err := scanContact(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting contact: %v", err)
	}

	return contact, nil
}

func (r *SQLContactRepository) GetAll() ([]*models.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, birthday, extra_data
		FROM contacts`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying contacts: %v", err)
	}
	defer rows.Close()

	var contacts []*models.Contact

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact: %v", err)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %v", err)
	}

	return contacts, nil
}

// Update aplica uma atualização parcial dentro de uma transação: lê o
// registro atual, mescla apenas os campos presentes e grava o resultado.
func (r *SQLContactRepository) Update(id int, fields *models.ContactUpdateRequest) (*models.Contact, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, first_name, last_name, email, phone_number, birthday, extra_data
		FROM contacts
		WHERE id = ?`

	contact, err := scanContact(tx.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting contact: %v", err)
	}

	if fields.FirstName != nil {
		contact.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		contact.LastName = *fields.LastName
	}
	if fields.Email != nil {
		contact.Email = *fields.Email
	}
	if fields.PhoneNumber != nil {
		contact.PhoneNumber = *fields.PhoneNumber
	}
	if fields.Birthday != nil {
		contact.Birthday = *fields.Birthday
	}
	if fields.ExtraData != nil {
		contact.ExtraData = fields.ExtraData
	}

	_, err = tx.Exec(`
		UPDATE contacts
		SET first_name = ?,
			last_name = ?,
			email = ?,
			phone_number = ?,
			birthday = ?,
			extra_data = ?
		WHERE id = ?`,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.PhoneNumber,
		contact.Birthday.String(),
		utils.NullString(contact.ExtraData),
		contact.ID,
	)

	if isDuplicateEmail(err) {
		return nil, models.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("error updating contact: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %v", err)
	}

	wsnotify.SendContactEvent(wsnotify.ContactUpdated, contact)
	return contact, nil
}

func (r *SQLContactRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %v", err)
	}

	if rows == 0 {
		return models.ErrContactNotFound
	}

	wsnotify.SendContactDeletedEvent(id)
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*models.Contact, error) {
	contact := &models.Contact{}
	var birthday string
	var extraData sql.NullString

	err := row.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.PhoneNumber,
		&birthday,
		&extraData,
	)
	if err != nil {
		return nil, err
	}

	contact.Birthday, err = models.ParseDate(birthday)
	if err != nil {
		return nil, fmt.Errorf("error parsing stored birthday: %v", err)
	}
	contact.ExtraData = utils.StringPtr(extraData)

	return contact, nil
}
