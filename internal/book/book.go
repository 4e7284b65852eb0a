package book

import (
	"sort"
	"time"

	"contact-book/internal/common/errors"
)

// AddressBook stores records keyed by contact name. Insertion order is kept
// explicitly so enumeration, search results and birthday-scan tie-breaking
// are deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// UpcomingBirthday is one entry of a birthday-window scan.
type UpcomingBirthday struct {
	Name      string
	Birthday  string
	DaysUntil int
}

// New creates an empty address book
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddOrReplace stores a record under its name, overwriting any prior record
// with that name. A replaced record keeps its position in iteration order.
func (b *AddressBook) AddOrReplace(record *Record) {
	name := record.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under a name, or nil if absent
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record stored under a name
func (b *AddressBook) Delete(name string) error {
	if _, exists := b.records[name]; !exists {
		return errors.ContactNotFound(name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records in the book
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns all contact names in insertion order
func (b *AddressBook) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// All returns all records in insertion order
func (b *AddressBook) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Clear removes every record from the book
func (b *AddressBook) Clear() {
	b.records = make(map[string]*Record)
	b.order = nil
}

// UpcomingBirthdays scans every record with a birthday and returns those
// whose next birthday falls within windowDays of the reference date,
// sorted ascending by days-until with stable iteration-order ties.
func (b *AddressBook) UpcomingBirthdays(windowDays int, reference time.Time) []UpcomingBirthday {
	var upcoming []UpcomingBirthday

	for _, record := range b.All() {
		days, ok := record.DaysToBirthday(reference)
		if !ok {
			continue
		}
		if days >= 0 && days <= windowDays {
			birthday, _ := record.Birthday()
			upcoming = append(upcoming, UpcomingBirthday{
				Name:      record.Name(),
				Birthday:  birthday.Value,
				DaysUntil: days,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming
}

// FindByTag returns the names of all records carrying the normalized tag,
// in insertion order
func (b *AddressBook) FindByTag(tag string) []string {
	var names []string
	for _, record := range b.All() {
		if record.HasTag(tag) {
			names = append(names, record.Name())
		}
	}
	return names
}

// AllTags maps each contact that has tags to its tag list
func (b *AddressBook) AllTags() map[string][]string {
	out := make(map[string][]string)
	for _, record := range b.All() {
		if tags := record.Tags(); len(tags) > 0 {
			out[record.Name()] = tags
		}
	}
	return out
}

// UniqueTags returns the union of every record's tag set, sorted
func (b *AddressBook) UniqueTags() []string {
	seen := make(map[string]bool)
	for _, record := range b.All() {
		for _, tag := range record.Tags() {
			seen[tag] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
