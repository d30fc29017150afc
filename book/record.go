// Package book implements the record store behind the satchel CLI: a
// contact address book and a notes book, both kept in flat JSON
// documents behind the storage.Saver contract.
package book

import (
	"time"

	"github.com/pkg/errors"
)

// Attributes is the persisted shape of one contact, keyed by the
// contact's name in the address book document.
type Attributes struct {
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
	Address  Address  `json:"address"`
	Emails   []string `json:"emails"`
}

// Record is one contact. A Record handed out by the address book is a
// detached copy: mutations only become visible once passed back to
// UpdateRecord.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday Birthday
	Address  Address
	Emails   []Email
}

// NewRecord builds a contact with the given name and an optional
// birthday in DD-MM-YYYY form (empty for none).
func NewRecord(name, birthday string) (*Record, error) {
	recName, err := NewName(name)
	if err != nil {
		return nil, err
	}

	recBirthday, err := NewBirthday(birthday)
	if err != nil {
		return nil, err
	}

	return &Record{Name: recName, Birthday: recBirthday}, nil
}

// AddPhone appends a validated phone number. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// FindPhone returns the stored phone equal to raw, if any.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, phone := range r.Phones {
		if phone.Value() == raw {
			return phone, true
		}
	}
	return Phone{}, false
}

// EditPhone replaces the phone equal to oldRaw with newRaw, in place.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, phone := range r.Phones {
		if phone.Value() == oldRaw {
			return r.Phones[i].Set(newRaw)
		}
	}
	return errors.Wrapf(ErrNotFound, "phone %q on contact %q", oldRaw, r.Name.Value())
}

// RemovePhone deletes the phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	for i, phone := range r.Phones {
		if phone.Value() == raw {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "phone %q on contact %q", raw, r.Name.Value())
}

// AddEmail appends a validated email address.
func (r *Record) AddEmail(raw string) error {
	email, err := NewEmail(raw)
	if err != nil {
		return err
	}
	r.Emails = append(r.Emails, email)
	return nil
}

// EditEmail replaces the email equal to oldRaw with newRaw, in place.
func (r *Record) EditEmail(oldRaw, newRaw string) error {
	for i, email := range r.Emails {
		if email.Value() == oldRaw {
			return r.Emails[i].Set(newRaw)
		}
	}
	return errors.Wrapf(ErrNotFound, "email %q on contact %q", oldRaw, r.Name.Value())
}

// SetBirthday replaces the birthday with a freshly validated one.
func (r *Record) SetBirthday(raw string) error {
	return r.Birthday.Set(raw)
}

// SetAddress replaces the address, padding missing trailing components.
func (r *Record) SetAddress(components []string) {
	r.Address = NewAddress(components)
}

// DaysToBirthday returns the number of whole days from today to the
// next occurrence of the birthday's month and day. A birthday falling
// on today counts as this year's, yielding 0. Fails when no birthday
// is on file.
func (r *Record) DaysToBirthday(today time.Time) (int, error) {
	if !r.Birthday.IsSet() {
		return 0, errors.Wrapf(ErrNotFound, "no birthday on contact %q", r.Name.Value())
	}

	// Compare dates only; time of day must not produce fractional days.
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	birthDate := r.Birthday.Date()

	next := time.Date(todayDate.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(todayDate) {
		next = time.Date(todayDate.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(todayDate).Hours() / 24), nil
}

// Attributes returns the record's canonical persisted form.
func (r *Record) Attributes() Attributes {
	attrs := Attributes{
		Phones:  make([]string, 0, len(r.Phones)),
		Emails:  make([]string, 0, len(r.Emails)),
		Address: r.Address,
	}
	for _, phone := range r.Phones {
		attrs.Phones = append(attrs.Phones, phone.Value())
	}
	for _, email := range r.Emails {
		attrs.Emails = append(attrs.Emails, email.Value())
	}
	if r.Birthday.IsSet() {
		birthday := r.Birthday.String()
		attrs.Birthday = &birthday
	}
	return attrs
}

// recordFromAttributes rebuilds a detached Record from its persisted
// form, re-validating every field on the way in.
func recordFromAttributes(name string, attrs Attributes) (*Record, error) {
	birthday := ""
	if attrs.Birthday != nil {
		birthday = *attrs.Birthday
	}

	record, err := NewRecord(name, birthday)
	if err != nil {
		return nil, err
	}

	for _, phone := range attrs.Phones {
		if err := record.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	for _, email := range attrs.Emails {
		if err := record.AddEmail(email); err != nil {
			return nil, err
		}
	}
	record.Address = attrs.Address

	return record, nil
}
