package storage

import (
	"os"
	"path/filepath"

	"contact-book/internal/common/errors"
	"contact-book/internal/common/logging"
	"contact-book/internal/service"
)

// Snapshot flattens the service's current book into storage DTOs, in book
// iteration order
func Snapshot(svc *service.AddressBookService) []Contact {
	records := svc.AllContacts()
	contacts := make([]Contact, 0, len(records))

	for _, record := range records {
		contact := Contact{
			Name:  record.Name(),
			Notes: record.Notes(),
			Tags:  record.Tags(),
		}
		for _, phone := range record.Phones() {
			contact.Phones = append(contact.Phones, phone.Value)
		}
		if email, ok := record.Email(); ok {
			contact.Email = email.Value
		}
		if birthday, ok := record.Birthday(); ok {
			contact.Birthday = birthday.Value
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

// Replay feeds decoded contacts back through the service, one field at a
// time. Validation and book-wide uniqueness apply exactly as at the prompt,
// so a tampered file is rejected rather than silently loaded.
func Replay(svc *service.AddressBookService, contacts []Contact) error {
	for _, contact := range contacts {
		if _, err := svc.AddContact(contact.Name, "", "", ""); err != nil {
			return err
		}
		for _, phone := range contact.Phones {
			if err := svc.AddPhoneToContact(contact.Name, phone); err != nil {
				return err
			}
		}
		if contact.Email != "" {
			if err := svc.AddEmail(contact.Name, contact.Email); err != nil {
				return err
			}
		}
		if contact.Birthday != "" {
			if err := svc.AddBirthday(contact.Name, contact.Birthday); err != nil {
				return err
			}
		}
		for _, note := range contact.Notes {
			if err := svc.AddNote(contact.Name, note); err != nil {
				return err
			}
		}
		for _, tag := range contact.Tags {
			if err := svc.AddTag(contact.Name, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// Import loads a file into the service, choosing the codec by extension
func Import(svc *service.AddressBookService, path string) error {
	codec, err := DefaultRegistry.ForExtension(filepath.Ext(path))
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.StorageError("failed to open "+path, err)
	}
	defer file.Close()

	contacts, err := codec.Decode(file)
	if err != nil {
		return err
	}
	if err := Replay(svc, contacts); err != nil {
		return err
	}

	logging.Info("book imported",
		logging.String("path", path),
		logging.String("codec", codec.Name()),
		logging.Int("contacts", len(contacts)))
	return nil
}

// Export writes the service's current book to a file, choosing the codec by
// extension
func Export(svc *service.AddressBookService, path string) error {
	codec, err := DefaultRegistry.ForExtension(filepath.Ext(path))
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.StorageError("failed to create "+path, err)
	}
	defer file.Close()

	contacts := Snapshot(svc)
	if err := codec.Encode(file, contacts); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return errors.StorageError("failed to close "+path, err)
	}

	logging.Info("book exported",
		logging.String("path", path),
		logging.String("codec", codec.Name()),
		logging.Int("contacts", len(contacts)))
	return nil
}
