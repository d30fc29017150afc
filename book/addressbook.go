package book

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ymelnychuk/satchel/storage"
)

// Search phrases shorter than this are rejected, they'd match nearly
// everything.
const minSearchPhraseLen = 2

// Entry is one (name, attributes) pair as stored in the address book
// document.
type Entry struct {
	Name       string
	Attributes Attributes
}

// BirthdayEntry is an Entry together with the number of days until the
// contact's next birthday.
type BirthdayEntry struct {
	Entry
	DaysToBirthday int
}

// AddressBook is the keyed contact store. Every operation re-reads the
// persisted document before acting and every mutation writes the whole
// document back, so sequential calls always observe the latest state.
type AddressBook struct {
	saver storage.Saver
	path  string
	now   func() time.Time
}

func NewAddressBook(saver storage.Saver, path string) *AddressBook {
	return &AddressBook{saver: saver, path: path, now: time.Now}
}

// WithClock overrides the time source used to anchor birthday windows.
func (b *AddressBook) WithClock(now func() time.Time) *AddressBook {
	if now != nil {
		b.now = now
	}
	return b
}

// AddRecord inserts a new contact. Fails with ErrAlreadyExists when a
// contact with the same name is already on file.
func (b *AddressBook) AddRecord(record *Record) error {
	doc, err := b.saver.Read(b.path)
	if err != nil {
		return err
	}

	name := record.Name.Value()
	if doc.Has(name) {
		return errors.Wrapf(ErrAlreadyExists, "contact %q", name)
	}

	raw, err := json.Marshal(record.Attributes())
	if err != nil {
		return err
	}
	doc.Set(name, raw)

	return b.saver.Write(b.path, doc)
}

// UpdateRecord replaces an existing contact's attributes wholesale.
// Fails with ErrNotFound when the contact is not on file.
func (b *AddressBook) UpdateRecord(record *Record) error {
	doc, err := b.saver.Read(b.path)
	if err != nil {
		return err
	}

	name := record.Name.Value()
	if !doc.Has(name) {
		return errors.Wrapf(ErrNotFound, "contact %q", name)
	}

	raw, err := json.Marshal(record.Attributes())
	if err != nil {
		return err
	}
	doc.Set(name, raw)

	return b.saver.Write(b.path, doc)
}

// Find reconstructs a detached Record for name, or returns nil when no
// such contact exists.
func (b *AddressBook) Find(name string) (*Record, error) {
	doc, err := b.saver.Read(b.path)
	if err != nil {
		return nil, err
	}

	raw, ok := doc.Get(name)
	if !ok {
		return nil, nil
	}

	var attrs Attributes
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, errors.Wrapf(err, "decoding contact %q", name)
	}
	return recordFromAttributes(name, attrs)
}

// Delete removes the contact and persists the shrunken document. Fails
// with ErrNotFound when the contact is not on file.
func (b *AddressBook) Delete(name string) error {
	doc, err := b.saver.Read(b.path)
	if err != nil {
		return err
	}

	if !doc.Delete(name) {
		return errors.Wrapf(ErrNotFound, "contact %q", name)
	}

	return b.saver.Write(b.path, doc)
}

// Iterator re-reads the persisted document and returns a chunked
// iterator over its entries in document order. A chunkSize below 1 is
// treated as 1.
func (b *AddressBook) Iterator(chunkSize int) (*Iterator, error) {
	entries, err := b.entries()
	if err != nil {
		return nil, err
	}

	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Iterator{entries: entries, chunkSize: chunkSize}, nil
}

// SearchContacts returns the contacts whose name (case-insensitive),
// phones, emails, address components or formatted birthday contain
// phrase as a substring, in document order.
func (b *AddressBook) SearchContacts(phrase string) ([]Entry, error) {
	if len([]rune(phrase)) < minSearchPhraseLen {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"search phrase must be at least %d characters", minSearchPhraseLen)
	}

	entries, err := b.entries()
	if err != nil {
		return nil, err
	}

	var found []Entry
	for _, entry := range entries {
		if entryMatches(entry, phrase) {
			found = append(found, entry)
		}
	}
	return found, nil
}

// UpcomingBirthdays returns the contacts whose next birthday falls
// within daysThreshold days from today, including birthdays falling on
// today. Contacts without a birthday are skipped.
func (b *AddressBook) UpcomingBirthdays(daysThreshold int) ([]BirthdayEntry, error) {
	if daysThreshold < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"days threshold must not be negative, got %d", daysThreshold)
	}

	entries, err := b.entries()
	if err != nil {
		return nil, err
	}

	var upcoming []BirthdayEntry
	for _, entry := range entries {
		if entry.Attributes.Birthday == nil {
			continue
		}

		record, err := recordFromAttributes(entry.Name, entry.Attributes)
		if err != nil {
			return nil, err
		}

		days, err := record.DaysToBirthday(b.now())
		if err != nil {
			return nil, err
		}
		if days <= daysThreshold {
			upcoming = append(upcoming, BirthdayEntry{Entry: entry, DaysToBirthday: days})
		}
	}
	return upcoming, nil
}

func (b *AddressBook) entries() ([]Entry, error) {
	doc, err := b.saver.Read(b.path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, doc.Len())
	for _, name := range doc.Keys() {
		raw, _ := doc.Get(name)

		var attrs Attributes
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return nil, errors.Wrapf(err, "decoding contact %q", name)
		}
		entries = append(entries, Entry{Name: name, Attributes: attrs})
	}
	return entries, nil
}

func entryMatches(entry Entry, phrase string) bool {
	if strings.Contains(strings.ToLower(entry.Name), strings.ToLower(phrase)) {
		return true
	}
	for _, phone := range entry.Attributes.Phones {
		if strings.Contains(phone, phrase) {
			return true
		}
	}
	for _, email := range entry.Attributes.Emails {
		if strings.Contains(email, phrase) {
			return true
		}
	}
	for _, component := range entry.Attributes.Address.Components() {
		if component != nil && strings.Contains(*component, phrase) {
			return true
		}
	}
	if entry.Attributes.Birthday != nil && strings.Contains(*entry.Attributes.Birthday, phrase) {
		return true
	}
	return false
}

// Iterator walks address book entries in fixed-size chunks. It holds a
// snapshot of the document taken when the iterator was created; create
// a fresh one to observe later writes.
type Iterator struct {
	entries   []Entry
	chunkSize int
	pos       int
}

// Next returns the next chunk of at most chunkSize entries. The second
// return value is false once the entries are exhausted.
func (it *Iterator) Next() ([]Entry, bool) {
	if it.pos >= len(it.entries) {
		return nil, false
	}

	end := it.pos + it.chunkSize
	if end > len(it.entries) {
		end = len(it.entries)
	}

	chunk := it.entries[it.pos:end]
	it.pos = end
	return chunk, true
}
