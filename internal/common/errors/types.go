package errors

import (
	"fmt"
	"strings"
)

// Kind classifies an application error. The set is closed: every error the
// core raises carries exactly one of these kinds, and callers branch on the
// kind rather than on message text.
type Kind string

const (
	// KindValidation represents malformed field input (name, phone, email, birthday)
	KindValidation Kind = "validation"
	// KindContactNotFound represents a lookup of a name absent from the book
	KindContactNotFound Kind = "contact_not_found"
	// KindDuplicateContact is reserved for strict-create semantics
	KindDuplicateContact Kind = "duplicate_contact"
	// KindPhoneNotFound represents an edit/remove of a phone absent from a record
	KindPhoneNotFound Kind = "phone_not_found"
	// KindDuplicatePhone represents a phone value already in use
	KindDuplicatePhone Kind = "duplicate_phone"
	// KindDuplicateEmail represents an email value already in use book-wide
	KindDuplicateEmail Kind = "duplicate_email"
	// KindNoteNotFound represents a note index out of range
	KindNoteNotFound Kind = "note_not_found"
	// KindConfig represents configuration errors
	KindConfig Kind = "config"
	// KindStorage represents import/export file errors
	KindStorage Kind = "storage"
)

// AppError is a structured application error carrying a kind and a
// machine-readable context payload (offending value, owning contact, index).
type AppError struct {
	Kind    Kind                   `json:"kind"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	parts := []string{string(e.Kind), e.Message}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}

	if len(e.Context) > 0 {
		contextParts := make([]string, 0, len(e.Context))
		for k, v := range e.Context {
			contextParts = append(contextParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context={%s}", strings.Join(contextParts, ", ")))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds a context entry to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ValidationError creates a validation error for a malformed field value
func ValidationError(msg string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: msg,
	}
}

// ContactNotFound creates an error for a name absent from the book
func ContactNotFound(name string) *AppError {
	return &AppError{
		Kind:    KindContactNotFound,
		Message: fmt.Sprintf("contact %q not found", name),
		Context: map[string]interface{}{"name": name},
	}
}

// DuplicateContact creates an error for a strict create of an existing name
func DuplicateContact(name string) *AppError {
	return &AppError{
		Kind:    KindDuplicateContact,
		Message: fmt.Sprintf("contact %q already exists", name),
		Context: map[string]interface{}{"name": name},
	}
}

// PhoneNotFound creates an error for a phone absent from a specific record
func PhoneNotFound(phone string) *AppError {
	return &AppError{
		Kind:    KindPhoneNotFound,
		Message: fmt.Sprintf("phone %s not found", phone),
		Context: map[string]interface{}{"phone": phone},
	}
}

// DuplicatePhone creates an error for a phone value already in use.
// owner is the contact the value already belongs to.
func DuplicatePhone(phone, owner string) *AppError {
	return &AppError{
		Kind:    KindDuplicatePhone,
		Message: fmt.Sprintf("phone %s already belongs to %q", phone, owner),
		Context: map[string]interface{}{"phone": phone, "owner": owner},
	}
}

// DuplicateEmail creates an error for an email value already in use book-wide
func DuplicateEmail(email, owner string) *AppError {
	return &AppError{
		Kind:    KindDuplicateEmail,
		Message: fmt.Sprintf("email %s already belongs to %q", email, owner),
		Context: map[string]interface{}{"email": email, "owner": owner},
	}
}

// NoteNotFound creates an error for a note index out of range
func NoteNotFound(index int) *AppError {
	return &AppError{
		Kind:    KindNoteNotFound,
		Message: fmt.Sprintf("note index %d out of range", index),
		Context: map[string]interface{}{"index": index},
	}
}

// ConfigError creates a configuration error
func ConfigError(msg string) *AppError {
	return &AppError{
		Kind:    KindConfig,
		Message: msg,
	}
}

// StorageError creates an import/export error wrapping an underlying cause
func StorageError(msg string, cause error) *AppError {
	return &AppError{
		Kind:    KindStorage,
		Message: msg,
		Cause:   cause,
	}
}

// IsKind checks whether an error is an AppError of a specific kind
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}

	return appErr.Kind == kind
}

// GetKind returns the error kind if err is an AppError, otherwise an empty Kind
func GetKind(err error) Kind {
	if err == nil {
		return ""
	}

	appErr, ok := err.(*AppError)
	if !ok {
		return ""
	}

	return appErr.Kind
}
