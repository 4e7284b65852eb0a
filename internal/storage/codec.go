// Package storage persists the address book to flat files. Each supported
// file extension maps to a Codec that encodes and decodes a plain contact
// DTO; import replays decoded contacts through the AddressBookService, so a
// corrupt persisted value is rejected exactly as if it had been typed at the
// prompt, and book-wide uniqueness holds on load.
package storage

import (
	"io"
	"sync"

	"contact-book/internal/common/errors"
)

// Contact is the flat representation that crosses the persistence boundary.
// No core types leak through it.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Email    string   `json:"email,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Notes    []string `json:"notes,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Codec encodes and decodes a whole book worth of contacts
type Codec interface {
	// Name returns the codec's short name for logs and errors
	Name() string
	// Encode writes all contacts to w
	Encode(w io.Writer, contacts []Contact) error
	// Decode reads all contacts from r
	Decode(r io.Reader) ([]Contact, error)
}

// Registry maps file extensions to codecs
type Registry struct {
	codecs map[string]Codec
	mu     sync.RWMutex
}

// NewRegistry creates an empty codec registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register binds a codec to a file extension (including the dot)
func (r *Registry) Register(ext string, codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[ext] = codec
}

// ForExtension returns the codec bound to a file extension
func (r *Registry) ForExtension(ext string) (Codec, error) {
	r.mu.RLock()
	codec, exists := r.codecs[ext]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.StorageError("unsupported file extension "+ext, nil)
	}
	return codec, nil
}

// Extensions returns the registered file extensions
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	return exts
}

// DefaultRegistry holds the codecs registered at package init
var DefaultRegistry = NewRegistry()
