package book

import (
	"fmt"
	"time"

	"contact-book/internal/common/errors"
)

// Record is one contact's mutable aggregate: identity, phone list, optional
// email and birthday, ordered notes and a deduplicated tag set. The internal
// lists are never handed out directly; accessors return copies so callers
// cannot bypass validation.
type Record struct {
	name     Name
	phones   []Phone
	email    *Email
	birthday *Birthday
	notes    []string
	tags     []string
}

// NewRecord creates a record with a mandatory non-empty name
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name
func (r *Record) Name() string {
	return r.name.Value
}

// Phones returns a copy of the phone list
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Notes returns a copy of the notes list
func (r *Record) Notes() []string {
	out := make([]string, len(r.notes))
	copy(out, r.notes)
	return out
}

// Tags returns a copy of the tag list in insertion order
func (r *Record) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Email returns the email value and whether one is set
func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

// Birthday returns the birthday value and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone normalizes and validates a raw phone and appends it. Adding a
// phone the record already holds is a no-op.
func (r *Record) AddPhone(raw string) error {
	if r.FindPhone(raw) != nil {
		return nil
	}
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone normalizes a raw phone and removes the matching entry
func (r *Record) RemovePhone(raw string) error {
	normalized := NormalizePhone(raw)
	for i, p := range r.phones {
		if p.Value == normalized {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return errors.PhoneNotFound(raw)
}

// EditPhone replaces an existing phone in place, preserving its position.
// The new value must validate and must not collide with another phone
// already on this record.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	normalizedOld := NormalizePhone(oldRaw)
	idx := -1
	for i, p := range r.phones {
		if p.Value == normalizedOld {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.PhoneNotFound(oldRaw)
	}

	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}

	for i, p := range r.phones {
		if i != idx && p.Value == phone.Value {
			return errors.DuplicatePhone(phone.Value, r.name.Value)
		}
	}

	r.phones[idx] = phone
	return nil
}

// FindPhone normalizes a raw phone and returns the matching entry, or nil
func (r *Record) FindPhone(raw string) *Phone {
	normalized := NormalizePhone(raw)
	for _, p := range r.phones {
		if p.Value == normalized {
			found := p
			return &found
		}
	}
	return nil
}

// SetEmail validates and overwrites the single optional email
func (r *Record) SetEmail(raw string) error {
	email, err := NewEmail(raw)
	if err != nil {
		return err
	}
	r.email = &email
	return nil
}

// SetBirthday validates and overwrites the single optional birthday
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// DaysToBirthday returns the number of days from the reference date to the
// next occurrence of the birthday's month and day. A Feb 29 birthday falls
// back to Feb 28 in non-leap years, never Mar 1. The second return value is
// false when no birthday is set.
func (r *Record) DaysToBirthday(reference time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}

	today := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	next := r.birthdayOccurrence(today.Year())
	if next.Before(today) {
		next = r.birthdayOccurrence(today.Year() + 1)
	}

	return int(next.Sub(today).Hours() / 24), true
}

// birthdayOccurrence places the birthday's month/day in the given year,
// applying the Feb 28 fallback for leap-day birthdays
func (r *Record) birthdayOccurrence(year int) time.Time {
	month := r.birthday.Date.Month()
	day := r.birthday.Date.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// isLeapYear reports whether a year has a Feb 29
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AddNote appends a note. Empty notes are ignored.
func (r *Record) AddNote(text string) {
	if text != "" {
		r.notes = append(r.notes, text)
	}
}

// EditNote replaces the note at a 0-based index
func (r *Record) EditNote(index int, text string) error {
	if index < 0 || index >= len(r.notes) {
		return errors.NoteNotFound(index)
	}
	r.notes[index] = text
	return nil
}

// RemoveNote deletes the note at a 0-based index
func (r *Record) RemoveNote(index int) error {
	if index < 0 || index >= len(r.notes) {
		return errors.NoteNotFound(index)
	}
	r.notes = append(r.notes[:index], r.notes[index+1:]...)
	return nil
}

// AddTag normalizes a tag and inserts it if not already present. Tags that
// are empty after normalization are ignored.
func (r *Record) AddTag(tag string) {
	normalized := NormalizeTag(tag)
	if normalized == "" || r.HasTag(normalized) {
		return
	}
	r.tags = append(r.tags, normalized)
}

// RemoveTag normalizes a tag and removes it if present. Removing an absent
// tag is not an error.
func (r *Record) RemoveTag(tag string) {
	normalized := NormalizeTag(tag)
	for i, t := range r.tags {
		if t == normalized {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			return
		}
	}
}

// HasTag reports whether the record carries the normalized tag
func (r *Record) HasTag(tag string) bool {
	normalized := NormalizeTag(tag)
	for _, t := range r.tags {
		if t == normalized {
			return true
		}
	}
	return false
}

// String renders the record for logs and debugging
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.Value
	}
	return fmt.Sprintf("Contact name: %s, phones: %v", r.name.Value, phones)
}
