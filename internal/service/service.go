// Package service implements AddressBookService, the single integrity
// boundary in front of the address book. Every mutation from the CLI or the
// import/export layer goes through it: the service enforces the book-wide
// uniqueness of phone numbers and emails that individual records cannot see.
package service

import (
	"strings"
	"time"

	"contact-book/internal/book"
	"contact-book/internal/common/errors"
	"contact-book/internal/common/logging"
)

// Change tags reported by AddContact for each applied sub-change.
const (
	ChangeContactCreated = "Contact created"
	ChangePhoneAdded     = "Phone added"
	ChangeEmailAdded     = "Email added"
	ChangeBirthdayAdded  = "Birthday added"
)

// NoteMatch is one note-search hit: the owning contact, the note's 0-based
// index within that contact and the note text.
type NoteMatch struct {
	Contact string
	Index   int
	Note    string
}

// AddressBookService owns an AddressBook for the process lifetime and layers
// cross-record invariants on top of it.
type AddressBookService struct {
	book *book.AddressBook
	log  logging.Logger
	now  func() time.Time
}

// New creates a service around an address book
func New(b *book.AddressBook, log logging.Logger) *AddressBookService {
	return &AddressBookService{
		book: b,
		log:  log,
		now:  time.Now,
	}
}

// checkPhoneUnique scans the whole book for the normalized phone value,
// skipping the named contact. Linear in records times phones, which is fine
// at address-book scale.
func (s *AddressBookService) checkPhoneUnique(raw, excludeContact string) error {
	normalized := book.NormalizePhone(raw)
	for _, record := range s.book.All() {
		if record.Name() == excludeContact {
			continue
		}
		for _, p := range record.Phones() {
			if p.Value == normalized {
				return errors.DuplicatePhone(normalized, record.Name())
			}
		}
	}
	return nil
}

// checkEmailUnique scans the whole book for the exact email value, skipping
// the named contact
func (s *AddressBookService) checkEmailUnique(email, excludeContact string) error {
	for _, record := range s.book.All() {
		if record.Name() == excludeContact {
			continue
		}
		if existing, ok := record.Email(); ok && existing.Value == email {
			return errors.DuplicateEmail(email, record.Name())
		}
	}
	return nil
}

// AddContact upserts a contact. A missing record is created; each supplied
// optional field is checked for book-wide uniqueness and applied only when it
// represents a real change. The returned tags list the sub-changes that were
// applied. Sub-changes commit independently: an error on a later field does
// not roll back an earlier one.
func (s *AddressBookService) AddContact(name, phone, email, birthday string) ([]string, error) {
	var applied []string

	record := s.book.Find(name)
	if record == nil {
		created, err := book.NewRecord(name)
		if err != nil {
			return nil, err
		}
		record = created
		s.book.AddOrReplace(record)
		applied = append(applied, ChangeContactCreated)
		s.log.Info("contact created", logging.String("name", name))
	}

	if phone != "" {
		if err := s.checkPhoneUnique(phone, name); err != nil {
			return applied, err
		}
		if record.FindPhone(phone) == nil {
			if err := record.AddPhone(phone); err != nil {
				return applied, err
			}
			applied = append(applied, ChangePhoneAdded)
		}
	}

	if email != "" {
		if err := s.checkEmailUnique(email, name); err != nil {
			return applied, err
		}
		if existing, ok := record.Email(); !ok || existing.Value != email {
			if err := record.SetEmail(email); err != nil {
				return applied, err
			}
			applied = append(applied, ChangeEmailAdded)
		}
	}

	if birthday != "" {
		if existing, ok := record.Birthday(); !ok || existing.Value != birthday {
			if err := record.SetBirthday(birthday); err != nil {
				return applied, err
			}
			applied = append(applied, ChangeBirthdayAdded)
		}
	}

	return applied, nil
}

// ChangePhone replaces one phone of a contact with a new value, enforcing
// book-wide uniqueness of the new value
func (s *AddressBookService) ChangePhone(name, oldPhone, newPhone string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	if err := s.checkPhoneUnique(newPhone, name); err != nil {
		return err
	}
	return record.EditPhone(oldPhone, newPhone)
}

// AddPhoneToContact appends an extra phone to a contact. Unlike the
// record-level add, the service path is strict: a phone the contact already
// holds is a DuplicatePhone error, not a no-op.
func (s *AddressBookService) AddPhoneToContact(name, phone string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	if err := s.checkPhoneUnique(phone, name); err != nil {
		return err
	}
	if record.FindPhone(phone) != nil {
		return errors.DuplicatePhone(book.NormalizePhone(phone), name)
	}
	return record.AddPhone(phone)
}

// DeleteContact removes a contact from the book
func (s *AddressBookService) DeleteContact(name string) error {
	if err := s.book.Delete(name); err != nil {
		return err
	}
	s.log.Info("contact deleted", logging.String("name", name))
	return nil
}

// GetContact returns the record stored under a name
func (s *AddressBookService) GetContact(name string) (*book.Record, error) {
	record := s.book.Find(name)
	if record == nil {
		return nil, errors.ContactNotFound(name)
	}
	return record, nil
}

// AllContacts returns every record in book iteration order
func (s *AddressBookService) AllContacts() []*book.Record {
	return s.book.All()
}

// SearchContacts returns every record whose name, any phone (normalized
// form) or email contains the query, case-insensitively. Each record appears
// once, in book iteration order.
func (s *AddressBookService) SearchContacts(query string) []*book.Record {
	query = strings.ToLower(query)
	var results []*book.Record

	for _, record := range s.book.All() {
		if strings.Contains(strings.ToLower(record.Name()), query) {
			results = append(results, record)
			continue
		}

		matched := false
		for _, p := range record.Phones() {
			if strings.Contains(p.Value, query) {
				results = append(results, record)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if email, ok := record.Email(); ok && strings.Contains(strings.ToLower(email.Value), query) {
			results = append(results, record)
		}
	}

	return results
}

// AddEmail sets a contact's email, enforcing book-wide uniqueness
func (s *AddressBookService) AddEmail(name, email string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	if err := s.checkEmailUnique(email, name); err != nil {
		return err
	}
	return record.SetEmail(email)
}

// AddBirthday sets a contact's birthday
func (s *AddressBookService) AddBirthday(name, birthday string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	return record.SetBirthday(birthday)
}

// DaysToBirthday returns the day count to a contact's next birthday.
// A contact without a birthday is a validation error.
func (s *AddressBookService) DaysToBirthday(name string) (int, error) {
	record := s.book.Find(name)
	if record == nil {
		return 0, errors.ContactNotFound(name)
	}
	days, ok := record.DaysToBirthday(s.now())
	if !ok {
		return 0, errors.ValidationError("no birthday set for " + name).
			WithContext("name", name)
	}
	return days, nil
}

// UpcomingBirthdays returns contacts whose birthday falls within the window
func (s *AddressBookService) UpcomingBirthdays(windowDays int) []book.UpcomingBirthday {
	return s.book.UpcomingBirthdays(windowDays, s.now())
}

// AddNote appends a note to a contact
func (s *AddressBookService) AddNote(name, text string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	record.AddNote(text)
	return nil
}

// EditNote replaces a contact's note at a 0-based index
func (s *AddressBookService) EditNote(name string, index int, text string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	return record.EditNote(index, text)
}

// DeleteNote removes a contact's note at a 0-based index
func (s *AddressBookService) DeleteNote(name string, index int) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	return record.RemoveNote(index)
}

// SearchNotes returns one match per note containing the query,
// case-insensitively, in book iteration order
func (s *AddressBookService) SearchNotes(query string) []NoteMatch {
	query = strings.ToLower(query)
	var results []NoteMatch

	for _, record := range s.book.All() {
		for i, note := range record.Notes() {
			if strings.Contains(strings.ToLower(note), query) {
				results = append(results, NoteMatch{
					Contact: record.Name(),
					Index:   i,
					Note:    note,
				})
			}
		}
	}

	return results
}

// GetNotes returns one contact's notes, or every contact's notes when name
// is empty
func (s *AddressBookService) GetNotes(name string) (map[string][]string, error) {
	if name != "" {
		record := s.book.Find(name)
		if record == nil {
			return nil, errors.ContactNotFound(name)
		}
		return map[string][]string{name: record.Notes()}, nil
	}

	out := make(map[string][]string)
	for _, record := range s.book.All() {
		if notes := record.Notes(); len(notes) > 0 {
			out[record.Name()] = notes
		}
	}
	return out, nil
}

// AddTag attaches a tag to a contact
func (s *AddressBookService) AddTag(name, tag string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	record.AddTag(tag)
	return nil
}

// RemoveTag detaches a tag from a contact
func (s *AddressBookService) RemoveTag(name, tag string) error {
	record := s.book.Find(name)
	if record == nil {
		return errors.ContactNotFound(name)
	}
	record.RemoveTag(tag)
	return nil
}

// AllTags maps each tagged contact to its tag list
func (s *AddressBookService) AllTags() map[string][]string {
	return s.book.AllTags()
}

// UniqueTags returns the sorted union of all tags in the book
func (s *AddressBookService) UniqueTags() []string {
	return s.book.UniqueTags()
}

// FilterByTag returns the records carrying the tag, in book iteration order
func (s *AddressBookService) FilterByTag(tag string) []*book.Record {
	var records []*book.Record
	for _, name := range s.book.FindByTag(tag) {
		if record := s.book.Find(name); record != nil {
			records = append(records, record)
		}
	}
	return records
}

// DeleteAll clears the whole book
func (s *AddressBookService) DeleteAll() {
	count := s.book.Len()
	s.book.Clear()
	s.log.Warn("book cleared", logging.Int("contacts_removed", count))
}

// Len returns the number of contacts in the book
func (s *AddressBookService) Len() int {
	return s.book.Len()
}
