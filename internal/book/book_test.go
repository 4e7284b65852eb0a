package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book/internal/common/errors"
)

func addRecord(t *testing.T, b *AddressBook, name string) *Record {
	t.Helper()
	record, err := NewRecord(name)
	require.NoError(t, err)
	b.AddOrReplace(record)
	return record
}

func TestAddressBook_AddOrReplace(t *testing.T) {
	t.Run("stores under name", func(t *testing.T) {
		b := New()
		addRecord(t, b, "Ann")

		found := b.Find("Ann")
		require.NotNil(t, found)
		assert.Equal(t, "Ann", found.Name())
	})

	t.Run("replace keeps iteration position", func(t *testing.T) {
		b := New()
		addRecord(t, b, "Ann")
		addRecord(t, b, "Bob")

		replacement, err := NewRecord("Ann")
		require.NoError(t, err)
		require.NoError(t, replacement.AddPhone("0501234567"))
		b.AddOrReplace(replacement)

		assert.Equal(t, []string{"Ann", "Bob"}, b.Names())
		assert.Len(t, b.Find("Ann").Phones(), 1)
		assert.Equal(t, 2, b.Len())
	})
}

func TestAddressBook_Find(t *testing.T) {
	b := New()
	addRecord(t, b, "Ann")

	assert.NotNil(t, b.Find("Ann"))
	assert.Nil(t, b.Find("Bob"))
}

func TestAddressBook_Delete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		b := New()
		addRecord(t, b, "Ann")
		addRecord(t, b, "Bob")

		require.NoError(t, b.Delete("Ann"))
		assert.Nil(t, b.Find("Ann"))
		assert.Equal(t, []string{"Bob"}, b.Names())
	})

	t.Run("absent", func(t *testing.T) {
		b := New()
		err := b.Delete("Ghost")
		assert.True(t, errors.IsKind(err, errors.KindContactNotFound))
	})
}

func TestAddressBook_All_InsertionOrder(t *testing.T) {
	b := New()
	for _, name := range []string{"Cara", "Ann", "Bob"} {
		addRecord(t, b, name)
	}

	var names []string
	for _, record := range b.All() {
		names = append(names, record.Name())
	}
	assert.Equal(t, []string{"Cara", "Ann", "Bob"}, names)
}

func TestAddressBook_Clear(t *testing.T) {
	b := New()
	addRecord(t, b, "Ann")
	addRecord(t, b, "Bob")

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Names())
}

func TestAddressBook_UpcomingBirthdays(t *testing.T) {
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	b := New()
	ann := addRecord(t, b, "Ann")
	require.NoError(t, ann.SetBirthday("12-06-1990")) // 2 days

	bob := addRecord(t, b, "Bob")
	require.NoError(t, bob.SetBirthday("10-06-1985")) // today

	cara := addRecord(t, b, "Cara")
	require.NoError(t, cara.SetBirthday("01-08-1992")) // outside window

	addRecord(t, b, "Dave") // no birthday

	t.Run("window filter and ascending sort", func(t *testing.T) {
		upcoming := b.UpcomingBirthdays(7, ref)

		require.Len(t, upcoming, 2)
		assert.Equal(t, "Bob", upcoming[0].Name)
		assert.Equal(t, 0, upcoming[0].DaysUntil)
		assert.Equal(t, "10-06-1985", upcoming[0].Birthday)
		assert.Equal(t, "Ann", upcoming[1].Name)
		assert.Equal(t, 2, upcoming[1].DaysUntil)
	})

	t.Run("ties keep iteration order", func(t *testing.T) {
		eve := addRecord(t, b, "Eve")
		require.NoError(t, eve.SetBirthday("12-06-2001")) // same day as Ann

		upcoming := b.UpcomingBirthdays(7, ref)
		require.Len(t, upcoming, 3)
		assert.Equal(t, "Ann", upcoming[1].Name)
		assert.Equal(t, "Eve", upcoming[2].Name)
	})

	t.Run("empty window", func(t *testing.T) {
		upcoming := b.UpcomingBirthdays(0, ref)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "Bob", upcoming[0].Name)
	})
}

func TestAddressBook_Tags(t *testing.T) {
	b := New()
	ann := addRecord(t, b, "Ann")
	ann.AddTag("VIP")
	ann.AddTag("family")

	bob := addRecord(t, b, "Bob")
	bob.AddTag("vip")

	addRecord(t, b, "Cara")

	t.Run("FindByTag normalizes the query", func(t *testing.T) {
		assert.Equal(t, []string{"Ann", "Bob"}, b.FindByTag(" Vip "))
		assert.Empty(t, b.FindByTag("work"))
	})

	t.Run("AllTags skips untagged records", func(t *testing.T) {
		all := b.AllTags()
		assert.Len(t, all, 2)
		assert.Equal(t, []string{"vip", "family"}, all["Ann"])
		assert.NotContains(t, all, "Cara")
	})

	t.Run("UniqueTags is a sorted union", func(t *testing.T) {
		assert.Equal(t, []string{"family", "vip"}, b.UniqueTags())
	})
}
