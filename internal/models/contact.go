package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout é o formato de data usado na API e no banco (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date representa uma data de calendário sem hora, serializada como YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", s, DateLayout)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Contact struct {
	ID          int     `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Birthday    Date    `json:"birthday"`
	ExtraData   *string `json:"extra_data"`
}

type ContactRepository interface {
	Save(contact *Contact) error
	GetByID(id int) (*Contact, error)
	GetAll() ([]*Contact, error)
	Update(id int, fields *ContactUpdateRequest) (*Contact, error)
	Delete(id int) error
}
