package services

import (
	"testing"
	"time"

	"github.com/nalgeon/be"

	"contacts-api/internal/models"
)

// memoryContactRepository implementa models.ContactRepository em memória
// para os testes do serviço, com a mesma semântica do repositório SQL
// (e-mail único, mescla parcial no Update).
type memoryContactRepository struct {
	contacts map[int]*models.Contact
	nextID   int
}

func newMemoryContactRepository() *memoryContactRepository {
	return &memoryContactRepository{contacts: make(map[int]*models.Contact), nextID: 1}
}

func (r *memoryContactRepository) emailTaken(email string, exceptID int) bool {
	for id, c := range r.contacts {
		if id != exceptID && c.Email == email {
			return true
		}
	}
	return false
}

func (r *memoryContactRepository) Save(contact *models.Contact) error {
	if r.emailTaken(contact.Email, 0) {
		return models.ErrDuplicateEmail
	}
	contact.ID = r.nextID
	r.nextID++
	stored := *contact
	r.contacts[contact.ID] = &stored
	return nil
}

func (r *memoryContactRepository) GetByID(id int) (*models.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	stored := *contact
	return &stored, nil
}

func (r *memoryContactRepository) GetAll() ([]*models.Contact, error) {
	var all []*models.Contact
	for _, contact := range r.contacts {
		stored := *contact
		all = append(all, &stored)
	}
	return all, nil
}

func (r *memoryContactRepository) Update(id int, fields *models.ContactUpdateRequest) (*models.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok {
		return nil, models.ErrContactNotFound
	}

	merged := *contact
	if fields.FirstName != nil {
		merged.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		merged.LastName = *fields.LastName
	}
	if fields.Email != nil {
		merged.Email = *fields.Email
	}
	if fields.PhoneNumber != nil {
		merged.PhoneNumber = *fields.PhoneNumber
	}
	if fields.Birthday != nil {
		merged.Birthday = *fields.Birthday
	}
	if fields.ExtraData != nil {
		merged.ExtraData = fields.ExtraData
	}

	if r.emailTaken(merged.Email, id) {
		return nil, models.ErrDuplicateEmail
	}

	r.contacts[id] = &merged
	result := merged
	return &result, nil
}

func (r *memoryContactRepository) Delete(id int) error {
	if _, ok := r.contacts[id]; !ok {
		return models.ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}

func strptr(s string) *string { return &s }

func newTestService(today time.Time) (*ContactService, *memoryContactRepository) {
	repo := newMemoryContactRepository()
	service := NewContactServiceWithClock(repo, func() time.Time { return today })
	return service, repo
}

func validCreateRequest() *models.ContactCreateRequest {
	return &models.ContactCreateRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		PhoneNumber: "555",
		Birthday:    models.NewDate(1990, time.March, 10),
	}
}

func TestCreateContact(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	contact, err := service.CreateContact(validCreateRequest())
	be.Err(t, err, nil)
	be.True(t, contact.ID > 0)
	be.Equal(t, contact.FirstName, "Ann")
	be.Equal(t, contact.LastName, "Lee")
	be.Equal(t, contact.Email, "ann@x.com")
	be.Equal(t, contact.PhoneNumber, "555")
	be.Equal(t, contact.Birthday.String(), "1990-03-10")
	be.True(t, contact.ExtraData == nil)

	// IDs são únicos entre contatos criados.
	req := validCreateRequest()
	req.Email = "other@x.com"
	second, err := service.CreateContact(req)
	be.Err(t, err, nil)
	be.True(t, second.ID != contact.ID)
}

func TestCreateContactValidation(t *testing.T) {
	service, repo := newTestService(date(2024, time.June, 1))

	cases := map[string]func(*models.ContactCreateRequest){
		"missing first_name": func(r *models.ContactCreateRequest) { r.FirstName = "" },
		"missing last_name":  func(r *models.ContactCreateRequest) { r.LastName = "" },
		"missing email":      func(r *models.ContactCreateRequest) { r.Email = "" },
		"malformed email":    func(r *models.ContactCreateRequest) { r.Email = "not-an-email" },
		"missing phone":      func(r *models.ContactCreateRequest) { r.PhoneNumber = "" },
		"missing birthday":   func(r *models.ContactCreateRequest) { r.Birthday = models.Date{} },
	}

	for name, mutate := range cases {
		req := validCreateRequest()
		mutate(req)
		_, err := service.CreateContact(req)
		if err == nil {
			t.Errorf("%s: expected validation error", name)
		}
		be.Err(t, err, models.ErrValidation)
	}

	be.Equal(t, len(repo.contacts), 0)
}

func TestCreateContactDuplicateEmail(t *testing.T) {
	service, repo := newTestService(date(2024, time.June, 1))

	_, err := service.CreateContact(validCreateRequest())
	be.Err(t, err, nil)

	req := validCreateRequest()
	req.FirstName = "Another"
	_, err = service.CreateContact(req)
	be.Err(t, err, models.ErrDuplicateEmail)

	// A contagem de registros não muda.
	be.Equal(t, len(repo.contacts), 1)
}

func TestGetContactNotFound(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	_, err := service.GetContact(42)
	be.Err(t, err, models.ErrContactNotFound)
}

func TestListContactsEmpty(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	contacts, err := service.ListContacts()
	be.Err(t, err, nil)
	be.Equal(t, len(contacts), 0)
}

func TestUpdateContactPartial(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	req := validCreateRequest()
	req.PhoneNumber = "111"
	created, err := service.CreateContact(req)
	be.Err(t, err, nil)

	updated, err := service.UpdateContact(created.ID, &models.ContactUpdateRequest{
		FirstName: strptr("X"),
	})
	be.Err(t, err, nil)
	be.Equal(t, updated.FirstName, "X")
	be.Equal(t, updated.PhoneNumber, "111")
	be.Equal(t, updated.LastName, "Lee")
	be.Equal(t, updated.Email, "ann@x.com")
	be.Equal(t, updated.Birthday.String(), "1990-03-10")

	// O registro persistido reflete a mescla.
	fetched, err := service.GetContact(created.ID)
	be.Err(t, err, nil)
	be.Equal(t, fetched.FirstName, "X")
	be.Equal(t, fetched.PhoneNumber, "111")
}

func TestUpdateContactNotFound(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	_, err := service.UpdateContact(99, &models.ContactUpdateRequest{FirstName: strptr("X")})
	be.Err(t, err, models.ErrContactNotFound)
}

func TestUpdateContactValidation(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	created, err := service.CreateContact(validCreateRequest())
	be.Err(t, err, nil)

	_, err = service.UpdateContact(created.ID, &models.ContactUpdateRequest{Email: strptr("bad")})
	be.Err(t, err, models.ErrValidation)

	_, err = service.UpdateContact(created.ID, &models.ContactUpdateRequest{FirstName: strptr("")})
	be.Err(t, err, models.ErrValidation)
}

func TestDeleteContact(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	created, err := service.CreateContact(validCreateRequest())
	be.Err(t, err, nil)

	be.Err(t, service.DeleteContact(created.ID), nil)

	// Segunda remoção e leitura posterior falham com not found.
	be.Err(t, service.DeleteContact(created.ID), models.ErrContactNotFound)
	_, err = service.GetContact(created.ID)
	be.Err(t, err, models.ErrContactNotFound)
}

func TestSearchContacts(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	jane := validCreateRequest()
	jane.FirstName = "Jane"
	jane.Email = "Jane@Example.com"
	_, err := service.CreateContact(jane)
	be.Err(t, err, nil)

	bob := validCreateRequest()
	bob.FirstName = "Bob"
	bob.LastName = "Stone"
	bob.Email = "bob@other.org"
	_, err = service.CreateContact(bob)
	be.Err(t, err, nil)

	matches, err := service.SearchContacts("example")
	be.Err(t, err, nil)
	be.Equal(t, len(matches), 1)
	be.Equal(t, matches[0].FirstName, "Jane")

	matches, err = service.SearchContacts("stone")
	be.Err(t, err, nil)
	be.Equal(t, len(matches), 1)
	be.Equal(t, matches[0].FirstName, "Bob")

	// Sem correspondência: lista vazia, não erro.
	matches, err = service.SearchContacts("zzz")
	be.Err(t, err, nil)
	be.Equal(t, len(matches), 0)

	// Consulta vazia retorna todos.
	matches, err = service.SearchContacts("")
	be.Err(t, err, nil)
	be.Equal(t, len(matches), 2)
}

func TestUpcomingBirthdays(t *testing.T) {
	service, _ := newTestService(date(2024, time.December, 28))

	near := validCreateRequest()
	near.FirstName = "Near"
	near.Email = "near@x.com"
	near.Birthday = models.NewDate(1993, time.January, 2)
	_, err := service.CreateContact(near)
	be.Err(t, err, nil)

	far := validCreateRequest()
	far.FirstName = "Far"
	far.Email = "far@x.com"
	far.Birthday = models.NewDate(1980, time.December, 10)
	_, err = service.CreateContact(far)
	be.Err(t, err, nil)

	// Janela de 10 dias cruza a virada do ano.
	upcoming, err := service.UpcomingBirthdays(10)
	be.Err(t, err, nil)
	be.Equal(t, len(upcoming), 1)
	be.Equal(t, upcoming[0].FirstName, "Near")

	// Janela padrão de 7 dias a partir de 28/12 termina em 04/01.
	upcoming, err = service.UpcomingBirthdays(DefaultBirthdayHorizonDays)
	be.Err(t, err, nil)
	be.Equal(t, len(upcoming), 1)
	be.Equal(t, upcoming[0].FirstName, "Near")
}

func TestUpcomingBirthdaysUsesInjectedClock(t *testing.T) {
	service, _ := newTestService(date(2024, time.June, 1))

	req := validCreateRequest()
	req.Birthday = models.NewDate(1990, time.June, 3)
	_, err := service.CreateContact(req)
	be.Err(t, err, nil)

	upcoming, err := service.UpcomingBirthdays(DefaultBirthdayHorizonDays)
	be.Err(t, err, nil)
	be.Equal(t, len(upcoming), 1)

	outside := validCreateRequest()
	outside.Email = "later@x.com"
	outside.Birthday = models.NewDate(1990, time.June, 10)
	_, err = service.CreateContact(outside)
	be.Err(t, err, nil)

	upcoming, err = service.UpcomingBirthdays(DefaultBirthdayHorizonDays)
	be.Err(t, err, nil)
	be.Equal(t, len(upcoming), 1)
	be.Equal(t, upcoming[0].Birthday.String(), "1990-06-03")
}
