package storage

import (
	"encoding/csv"
	"io"
	"strings"

	"contact-book/internal/common/errors"
)

// listSeparator joins phones and tags inside a single CSV cell. Notes are
// joined with newlines instead, since note text may itself contain ";" but
// never a line break.
const listSeparator = ";"

var csvHeader = []string{"name", "phones", "email", "birthday", "notes", "tags"}

// CSVCodec stores the book as one header row plus one row per contact
type CSVCodec struct{}

func init() {
	DefaultRegistry.Register(".csv", &CSVCodec{})
}

// Name returns the codec name
func (c *CSVCodec) Name() string {
	return "csv"
}

// Encode writes a header row followed by one row per contact
func (c *CSVCodec) Encode(w io.Writer, contacts []Contact) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return errors.StorageError("failed to write csv header", err)
	}

	for _, contact := range contacts {
		row := []string{
			contact.Name,
			strings.Join(contact.Phones, listSeparator),
			contact.Email,
			contact.Birthday,
			strings.Join(contact.Notes, "\n"),
			strings.Join(contact.Tags, listSeparator),
		}
		if err := writer.Write(row); err != nil {
			return errors.StorageError("failed to write csv row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.StorageError("failed to flush csv", err)
	}
	return nil
}

// Decode reads rows written by Encode. The header row is required.
func (c *CSVCodec) Decode(r io.Reader) ([]Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.StorageError("failed to read csv", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !equalRow(rows[0], csvHeader) {
		return nil, errors.StorageError("unexpected csv header", nil)
	}

	contacts := make([]Contact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		contacts = append(contacts, Contact{
			Name:     row[0],
			Phones:   splitCell(row[1], listSeparator),
			Email:    row[2],
			Birthday: row[3],
			Notes:    splitCell(row[4], "\n"),
			Tags:     splitCell(row[5], listSeparator),
		})
	}
	return contacts, nil
}

func splitCell(cell, sep string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, sep)
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
