package services

import (
	"fmt"
	"time"

	"contacts-api/internal/models"
	"contacts-api/internal/utils"
)

// DefaultBirthdayHorizonDays é o horizonte padrão da consulta de
// próximos aniversários.
const DefaultBirthdayHorizonDays = 7

type ContactService struct {
	repository models.ContactRepository
	now        func() time.Time
}

func NewContactService(repository models.ContactRepository) *ContactService {
	return &ContactService{
		repository: repository,
		now:        time.Now,
	}
}

// NewContactServiceWithClock permite injetar o relógio nos testes.
func NewContactServiceWithClock(repository models.ContactRepository, now func() time.Time) *ContactService {
	return &ContactService{
		repository: repository,
		now:        now,
	}
}

func validateCreate(req *models.ContactCreateRequest) error {
	if req.FirstName == "" {
		return fmt.Errorf("%w: first_name is required", models.ErrValidation)
	}
	if req.LastName == "" {
		return fmt.Errorf("%w: last_name is required", models.ErrValidation)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	}
	if !utils.IsEmail(req.Email) {
		return fmt.Errorf("%w: email %q is malformed", models.ErrValidation, req.Email)
	}
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone_number is required", models.ErrValidation)
	}
	if req.Birthday.IsZero() {
		return fmt.Errorf("%w: birthday is required", models.ErrValidation)
	}
	return nil
}

func validateUpdate(req *models.ContactUpdateRequest) error {
	if req.FirstName != nil && *req.FirstName == "" {
		return fmt.Errorf("%w: first_name cannot be empty", models.ErrValidation)
	}
	if req.LastName != nil && *req.LastName == "" {
		return fmt.Errorf("%w: last_name cannot be empty", models.ErrValidation)
	}
	if req.Email != nil && !utils.IsEmail(*req.Email) {
		return fmt.Errorf("%w: email %q is malformed", models.ErrValidation, *req.Email)
	}
	if req.PhoneNumber != nil && *req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone_number cannot be empty", models.ErrValidation)
	}
	if req.Birthday != nil && req.Birthday.IsZero() {
		return fmt.Errorf("%w: birthday cannot be empty", models.ErrValidation)
	}
	return nil
}

func (s *ContactService) CreateContact(req *models.ContactCreateRequest) (*models.Contact, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Birthday:    req.Birthday,
		ExtraData:   req.ExtraData,
	}

	if err := s.repository.Save(contact); err != nil {
		return nil, err
	}

	utils.LogInfo("Contato criado: %s %s (id=%d)", contact.FirstName, contact.LastName, contact.ID)
	return contact, nil
}

func (s *ContactService) GetContact(id int) (*models.Contact, error) {
	contact, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, models.ErrContactNotFound
	}
	return contact, nil
}

func (s *ContactService) ListContacts() ([]*models.Contact, error) {
	contacts, err := s.repository.GetAll()
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}
	return contacts, nil
}

func (s *ContactService) UpdateContact(id int, req *models.ContactUpdateRequest) (*models.Contact, error) {
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	contact, err := s.repository.Update(id, req)
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Contato atualizado: id=%d", id)
	return contact, nil
}

func (s *ContactService) DeleteContact(id int) error {
	if err := s.repository.Delete(id); err != nil {
		return err
	}
	utils.LogInfo("Contato removido: id=%d", id)
	return nil
}

func (s *ContactService) SearchContacts(query string) ([]*models.Contact, error) {
	contacts, err := s.repository.GetAll()
	if err != nil {
		return nil, err
	}

	matched := []*models.Contact{}
	for _, contact := range contacts {
		if MatchesQuery(contact, query) {
			matched = append(matched, contact)
		}
	}
	return matched, nil
}

// UpcomingBirthdays retorna os contatos cujo aniversário (mês e dia) cai
// em [hoje, hoje+horizonDays). "Hoje" é calculado uma única vez por chamada.
func (s *ContactService) UpcomingBirthdays(horizonDays int) ([]*models.Contact, error) {
	contacts, err := s.repository.GetAll()
	if err != nil {
		return nil, err
	}

	today := s.now()
	upcoming := []*models.Contact{}
	for _, contact := range contacts {
		if BirthdayInWindow(contact.Birthday.Time, today, horizonDays) {
			upcoming = append(upcoming, contact)
		}
	}
	return upcoming, nil
}
