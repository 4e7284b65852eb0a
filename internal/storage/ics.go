package storage

import (
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"contact-book/internal/book"
	"contact-book/internal/common/errors"
)

// ICSCodec exports birthdays as a yearly-recurring iCalendar feed, one
// all-day VEVENT per contact with a birthday. It is export-only: calendar
// events carry no phones, emails or notes, so a book cannot be rebuilt from
// them.
type ICSCodec struct{}

func init() {
	DefaultRegistry.Register(".ics", &ICSCodec{})
}

// Name returns the codec name
func (c *ICSCodec) Name() string {
	return "ics"
}

// Encode writes one recurring all-day event per contact with a birthday
func (c *ICSCodec) Encode(w io.Writer, contacts []Contact) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//contact-book//birthday calendar//EN")

	stamp := time.Now().UTC()
	for _, contact := range contacts {
		if contact.Birthday == "" {
			continue
		}
		born, err := time.Parse(book.BirthdayLayout, contact.Birthday)
		if err != nil {
			return errors.StorageError("malformed birthday for "+contact.Name, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.NewString())
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetText(ical.PropSummary, "Birthday: "+contact.Name)

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetValueType(ical.ValueDate)
		start.Value = born.Format("20060102")
		event.Props.Set(start)

		event.Props.SetText(ical.PropRecurrenceRule, "FREQ=YEARLY")
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return errors.StorageError("failed to encode calendar", err)
	}
	return nil
}

// Decode always fails: a birthday calendar does not hold enough of a contact
// to rebuild one
func (c *ICSCodec) Decode(io.Reader) ([]Contact, error) {
	return nil, errors.StorageError("ics files are export-only", nil)
}
