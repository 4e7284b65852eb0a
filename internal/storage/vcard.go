package storage

import (
	"io"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"

	"contact-book/internal/book"
	"contact-book/internal/common/errors"
)

// VCardCodec stores the book as a stream of vCard 4.0 cards, one per contact.
// Tags map to CATEGORIES, notes to repeated NOTE properties.
type VCardCodec struct{}

func init() {
	DefaultRegistry.Register(".vcf", &VCardCodec{})
}

// Name returns the codec name
func (c *VCardCodec) Name() string {
	return "vcard"
}

// Encode writes one card per contact
func (c *VCardCodec) Encode(w io.Writer, contacts []Contact) error {
	enc := vcard.NewEncoder(w)

	for _, contact := range contacts {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, contact.Name)
		card.SetValue(vcard.FieldUID, "urn:uuid:"+uuid.NewString())

		for _, phone := range contact.Phones {
			card.AddValue(vcard.FieldTelephone, phone)
		}
		if contact.Email != "" {
			card.SetValue(vcard.FieldEmail, contact.Email)
		}
		if contact.Birthday != "" {
			if t, err := time.Parse(book.BirthdayLayout, contact.Birthday); err == nil {
				card.SetValue(vcard.FieldBirthday, t.Format("20060102"))
			}
		}
		for _, note := range contact.Notes {
			card.AddValue(vcard.FieldNote, note)
		}
		if len(contact.Tags) > 0 {
			card.SetValue(vcard.FieldCategories, strings.Join(contact.Tags, ","))
		}

		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return errors.StorageError("failed to encode vcard for "+contact.Name, err)
		}
	}
	return nil
}

// Decode reads every card in the stream
func (c *VCardCodec) Decode(r io.Reader) ([]Contact, error) {
	dec := vcard.NewDecoder(r)
	var contacts []Contact

	for {
		card, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.StorageError("failed to decode vcard", err)
		}

		contact := Contact{
			Name: card.PreferredValue(vcard.FieldFormattedName),
		}
		for _, tel := range card[vcard.FieldTelephone] {
			contact.Phones = append(contact.Phones, tel.Value)
		}
		if email := card.Get(vcard.FieldEmail); email != nil {
			contact.Email = email.Value
		}
		if bday := card.Get(vcard.FieldBirthday); bday != nil {
			if converted, err := vcardDateToBirthday(bday.Value); err == nil {
				contact.Birthday = converted
			}
		}
		for _, note := range card[vcard.FieldNote] {
			contact.Notes = append(contact.Notes, note.Value)
		}
		contact.Tags = card.Categories()

		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// vcardDateToBirthday converts a BDAY value into the book's DD-MM-YYYY form
func vcardDateToBirthday(value string) (string, error) {
	for _, layout := range []string{"20060102", "2006-01-02", book.BirthdayLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(book.BirthdayLayout), nil
		}
	}
	return "", errors.StorageError("unrecognized birthday value "+value, nil)
}
