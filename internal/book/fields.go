// Package book implements the contact book domain model: validated field
// values, the mutable Record aggregate and the AddressBook collection.
//
// Every field value is constructed through a validating constructor, so a
// Record can never hold a malformed phone, email or birthday. Phone values
// are normalized to a canonical +38XXXXXXXXXX form before validation and all
// phone comparisons run on the normalized string.
package book

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"contact-book/internal/common/errors"
)

const (
	// phoneCountryPrefix is prepended to bare 10-digit local numbers
	phoneCountryPrefix = "38"

	// BirthdayLayout is the accepted birthday format, day-month-year
	BirthdayLayout = "02-01-2006"
)

var (
	// nonDigitRegex matches any non-digit character
	nonDigitRegex = regexp.MustCompile(`\D`)

	// phoneRegex accepts only the canonical normalized form
	phoneRegex = regexp.MustCompile(`^\+38\d{10}$`)

	// emailRegex rejects '@' and whitespace in the local part and requires
	// at least one dot after the '@'
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// birthdayRegex enforces the strict two-digit day, two-digit month,
	// four-digit year grammar; time.Parse alone would accept unpadded values
	birthdayRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// Name is a contact's identity and its key in the AddressBook.
type Name struct {
	Value string
}

// NewName validates that a name is non-empty
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, errors.ValidationError("name cannot be empty")
	}
	return Name{Value: value}, nil
}

// Phone is a normalized, validated phone number.
type Phone struct {
	Value string
}

// NormalizePhone canonicalizes a raw phone string: all non-digit characters
// are stripped, a bare 10-digit local number gets the country prefix, a
// 12-digit number gets a leading plus, anything else keeps its digits behind
// a leading plus. Normalization is idempotent.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) == 10 {
		return "+" + phoneCountryPrefix + digits
	}
	return "+" + digits
}

// NewPhone normalizes and validates a raw phone number
func NewPhone(raw string) (Phone, error) {
	normalized := NormalizePhone(raw)
	if !phoneRegex.MatchString(normalized) {
		return Phone{}, errors.ValidationError(
			fmt.Sprintf("invalid phone number %q, use format +380XXXXXXXXX", raw),
		).WithContext("raw", raw)
	}
	return Phone{Value: normalized}, nil
}

// Email is a validated email address. No normalization is applied: equality
// and uniqueness are case-sensitive on the raw string.
type Email struct {
	Value string
}

// NewEmail validates an email address
func NewEmail(value string) (Email, error) {
	if !emailRegex.MatchString(value) {
		return Email{}, errors.ValidationError(
			fmt.Sprintf("invalid email format: %q", value),
		).WithContext("raw", value)
	}
	return Email{Value: value}, nil
}

// Birthday keeps both the original DD-MM-YYYY string and the parsed date.
type Birthday struct {
	Value string
	Date  time.Time
}

// NewBirthday parses a birthday in the strict DD-MM-YYYY layout. Impossible
// calendar dates (day 30 of February) fail validation.
func NewBirthday(value string) (Birthday, error) {
	if !birthdayRegex.MatchString(value) {
		return Birthday{}, errors.ValidationError(
			fmt.Sprintf("invalid date format %q, use DD-MM-YYYY", value),
		).WithContext("raw", value)
	}
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, errors.ValidationError(
			fmt.Sprintf("invalid calendar date: %q", value),
		).WithContext("raw", value)
	}
	return Birthday{Value: value, Date: date}, nil
}

// NormalizeTag canonicalizes a tag: trimmed and case-folded
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
