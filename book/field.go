package book

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the textual form birthdays are written in: DD-MM-YYYY.
const DateLayout = "02-01-2006"

var validate = validator.New()

// Name is a contact's display name and its key in the address book.
// Uniqueness is the book's job, the field only rejects blank input.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	name := Name{}
	if err := name.Set(raw); err != nil {
		return Name{}, err
	}
	return name, nil
}

func (n *Name) Set(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Field: "name", Value: raw, Reason: "must not be blank"}
	}
	n.value = raw
	return nil
}

func (n Name) Value() string {
	return n.value
}

// Phone is a 10 digit phone number.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	phone := Phone{}
	if err := phone.Set(raw); err != nil {
		return Phone{}, err
	}
	return phone, nil
}

func (p *Phone) Set(raw string) error {
	if err := validate.Var(raw, "required,len=10,number"); err != nil {
		return &ValidationError{
			Field:  "phone",
			Value:  raw,
			Reason: "must be exactly 10 digits",
		}
	}
	p.value = raw
	return nil
}

func (p Phone) Value() string {
	return p.value
}

// Email is a validated email address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	email := Email{}
	if err := email.Set(raw); err != nil {
		return Email{}, err
	}
	return email, nil
}

func (e *Email) Set(raw string) error {
	// The domain must contain a dot, which the email rule alone does
	// not insist on.
	at := strings.LastIndex(raw, "@")
	dottedDomain := at > 0 && strings.Contains(raw[at:], ".")

	if err := validate.Var(raw, "required,email"); err != nil || !dottedDomain {
		return &ValidationError{
			Field:  "email",
			Value:  raw,
			Reason: "must be of the form local@domain.tld",
		}
	}
	e.value = raw
	return nil
}

func (e Email) Value() string {
	return e.value
}

// Birthday is an optional calendar date. The zero value means no
// birthday on file.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw as DD-MM-YYYY. An empty raw yields an unset
// birthday, which is a valid state.
func NewBirthday(raw string) (Birthday, error) {
	birthday := Birthday{}
	if err := birthday.Set(raw); err != nil {
		return Birthday{}, err
	}
	return birthday, nil
}

func (b *Birthday) Set(raw string) error {
	if raw == "" {
		b.date = time.Time{}
		return nil
	}

	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return &ValidationError{
			Field:  "birthday",
			Value:  raw,
			Reason: "expected date format is DD-MM-YYYY",
		}
	}
	b.date = date
	return nil
}

func (b Birthday) IsSet() bool {
	return !b.date.IsZero()
}

func (b Birthday) Date() time.Time {
	return b.date
}

// String returns the DD-MM-YYYY form, or "" when unset.
func (b Birthday) String() string {
	if !b.IsSet() {
		return ""
	}
	return b.date.Format(DateLayout)
}

// Address is an ordered 5-tuple of optional components.
type Address struct {
	Country   *string `json:"country"`
	City      *string `json:"city"`
	Street    *string `json:"street"`
	House     *string `json:"house"`
	Apartment *string `json:"apartment"`
}

// NewAddress builds an Address from up to 5 positional components in
// the order country, city, street, house, apartment. Missing trailing
// components are left unset.
func NewAddress(components []string) Address {
	padded := make([]*string, 5)
	for i := range padded {
		if i < len(components) {
			component := components[i]
			padded[i] = &component
		}
	}
	return Address{
		Country:   padded[0],
		City:      padded[1],
		Street:    padded[2],
		House:     padded[3],
		Apartment: padded[4],
	}
}

// Components returns the address components in order. Unset components
// are nil.
func (a Address) Components() []*string {
	return []*string{a.Country, a.City, a.Street, a.House, a.Apartment}
}

func (a Address) IsZero() bool {
	for _, component := range a.Components() {
		if component != nil {
			return false
		}
	}
	return true
}

// Equal compares two addresses component-wise.
func (a Address) Equal(other Address) bool {
	left, right := a.Components(), other.Components()
	for i := range left {
		if (left[i] == nil) != (right[i] == nil) {
			return false
		}
		if left[i] != nil && *left[i] != *right[i] {
			return false
		}
	}
	return true
}
