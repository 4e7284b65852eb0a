package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book/internal/common/errors"
)

func TestNewName(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		name, err := NewName("Ann")
		require.NoError(t, err)
		assert.Equal(t, "Ann", name.Value)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewName("")
		assert.True(t, errors.IsKind(err, errors.KindValidation))
	})
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare 10 digits gets country prefix", "0501234567", "+380501234567"},
		{"10 digits with separators", "050-123-45-67", "+380501234567"},
		{"10 digits with parens and spaces", "(050) 123 45 67", "+380501234567"},
		{"12 digits gets plus", "380501234567", "+380501234567"},
		{"already normalized", "+380501234567", "+380501234567"},
		{"other lengths keep digits behind plus", "12345", "+12345"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	raws := []string{"0501234567", "380501234567", "+380501234567", "050 123 4567"}
	for _, raw := range raws {
		once := NormalizePhone(raw)
		assert.Equal(t, once, NormalizePhone(once), "normalizing %q twice changed the value", raw)
	}
}

func TestNewPhone(t *testing.T) {
	t.Run("valid local number", func(t *testing.T) {
		phone, err := NewPhone("0501234567")
		require.NoError(t, err)
		assert.Equal(t, "+380501234567", phone.Value)
	})

	t.Run("valid full number", func(t *testing.T) {
		phone, err := NewPhone("+380501234567")
		require.NoError(t, err)
		assert.Equal(t, "+380501234567", phone.Value)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := NewPhone("12345")
		assert.True(t, errors.IsKind(err, errors.KindValidation))
	})

	t.Run("wrong country code", func(t *testing.T) {
		_, err := NewPhone("+390501234567")
		assert.True(t, errors.IsKind(err, errors.KindValidation))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewPhone("")
		assert.True(t, errors.IsKind(err, errors.KindValidation))
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		email, err := NewEmail("ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", email.Value)
	})

	t.Run("case preserved", func(t *testing.T) {
		email, err := NewEmail("Ann@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ann@Example.com", email.Value)
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{"missing at", "ann.example.com"},
		{"missing dot in domain", "ann@example"},
		{"whitespace in local part", "an n@example.com"},
		{"double at", "a@nn@example.com"},
		{"empty", ""},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmail(tt.raw)
			assert.True(t, errors.IsKind(err, errors.KindValidation))
		})
	}
}

func TestNewBirthday(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		b, err := NewBirthday("15-03-1990")
		require.NoError(t, err)
		assert.Equal(t, "15-03-1990", b.Value)
		assert.Equal(t, time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), b.Date)
	})

	t.Run("leap day parses", func(t *testing.T) {
		b, err := NewBirthday("29-02-2000")
		require.NoError(t, err)
		assert.Equal(t, time.February, b.Date.Month())
		assert.Equal(t, 29, b.Date.Day())
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{"impossible date", "30-02-1990"},
		{"leap day in non-leap year", "29-02-1999"},
		{"unpadded day", "5-03-1990"},
		{"unpadded month", "15-3-1990"},
		{"wrong separators", "15/03/1990"},
		{"two-digit year", "15-03-90"},
		{"iso order", "1990-03-15"},
		{"empty", ""},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBirthday(tt.raw)
			assert.True(t, errors.IsKind(err, errors.KindValidation), "expected validation error for %q", tt.raw)
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "vip", NormalizeTag(" VIP "))
	assert.Equal(t, "family", NormalizeTag("Family"))
	assert.Equal(t, "", NormalizeTag("   "))
}
