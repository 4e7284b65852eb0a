package storage

import (
	"encoding/json"
	"io"

	"contact-book/internal/common/errors"
)

// JSONCodec is the default book format: a pretty-printed array of contacts
type JSONCodec struct{}

func init() {
	DefaultRegistry.Register(".json", &JSONCodec{})
}

// Name returns the codec name
func (c *JSONCodec) Name() string {
	return "json"
}

// Encode writes the contacts as an indented JSON array
func (c *JSONCodec) Encode(w io.Writer, contacts []Contact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return errors.StorageError("failed to encode json", err)
	}
	return nil
}

// Decode reads a JSON array of contacts
func (c *JSONCodec) Decode(r io.Reader) ([]Contact, error) {
	var contacts []Contact
	if err := json.NewDecoder(r).Decode(&contacts); err != nil {
		if err == io.EOF {
			// empty file decodes to an empty book
			return nil, nil
		}
		return nil, errors.StorageError("failed to decode json", err)
	}
	return contacts, nil
}
