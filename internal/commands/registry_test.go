package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-book/internal/book"
	"contact-book/internal/common/logging"
	"contact-book/internal/service"
)

type testHarness struct {
	registry *Registry
	svc      *service.AddressBookService
	out      *bytes.Buffer
	answer   string
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	h := &testHarness{
		svc: service.New(book.New(), logging.NewNopLogger()),
		out: &bytes.Buffer{},
	}
	ctx := &Context{
		Service:       h.svc,
		Out:           h.out,
		LookaheadDays: 7,
		Prompt: func(string) (string, error) {
			return h.answer, nil
		},
	}
	h.registry = NewRegistry(ctx)
	return h
}

// run dispatches one raw line and returns everything printed for it
func (h *testHarness) run(t *testing.T, line string) string {
	t.Helper()

	fields, err := SplitArgs(line)
	require.NoError(t, err)
	require.NotEmpty(t, fields)

	h.out.Reset()
	h.registry.Execute(fields[0], fields[1:])
	return h.out.String()
}

func TestRegistry_Names(t *testing.T) {
	h := newHarness(t)

	names := h.registry.Names()
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "filter_by_tag")
	assert.Contains(t, names, "exit")
	assert.Len(t, names, 27)
}

func TestRegistry_Execute_Unknown(t *testing.T) {
	h := newHarness(t)

	quit, known := h.registry.Execute("frobnicate", nil)
	assert.False(t, quit)
	assert.False(t, known)
	assert.Contains(t, h.out.String(), "frobnicate")
}

func TestRegistry_Execute_Quit(t *testing.T) {
	h := newHarness(t)

	for _, name := range []string{"exit", "close"} {
		quit, known := h.registry.Execute(name, nil)
		assert.True(t, quit, name)
		assert.True(t, known, name)
	}
}

func TestHandleAdd(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		h := newHarness(t)
		out := h.run(t, "add Ann 0501234567")
		assert.Contains(t, out, "Ann")
		assert.Equal(t, 1, h.svc.Len())
	})

	t.Run("update reports changed fields", func(t *testing.T) {
		h := newHarness(t)
		h.run(t, "add Ann")
		out := h.run(t, "add Ann 0501234567")
		assert.Contains(t, out, "Changed: "+service.ChangePhoneAdded)
	})

	t.Run("no changes", func(t *testing.T) {
		h := newHarness(t)
		h.run(t, "add Ann 0501234567")
		out := h.run(t, "add Ann 0501234567")
		assert.Contains(t, out, "already up to date")
	})

	t.Run("duplicate phone of another contact", func(t *testing.T) {
		h := newHarness(t)
		h.run(t, "add Ann 0501234567")
		out := h.run(t, "add Bob +380501234567")
		assert.Contains(t, out, "Duplicate")
		// the record itself was still created before the phone failed
		assert.Equal(t, 2, h.svc.Len())
	})

	t.Run("missing args prints usage", func(t *testing.T) {
		h := newHarness(t)
		out := h.run(t, "add")
		assert.Contains(t, out, "add <name>")
	})
}

func TestHandlePhoneCommands(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann 0501234567")

	t.Run("phone lists normalized values", func(t *testing.T) {
		out := h.run(t, "phone Ann")
		assert.Contains(t, out, "+380501234567")
	})

	t.Run("change", func(t *testing.T) {
		out := h.run(t, "change Ann 0501234567 0671112233")
		assert.Contains(t, out, "Ann")
		assert.Contains(t, h.run(t, "phone Ann"), "+380671112233")
	})

	t.Run("add_phone duplicate on same record", func(t *testing.T) {
		out := h.run(t, "add_phone Ann 0671112233")
		assert.Contains(t, out, "Duplicate")
	})

	t.Run("unknown contact", func(t *testing.T) {
		out := h.run(t, "phone Ghost")
		assert.Contains(t, out, "Not found")
	})
}

func TestHandleListAndSearch(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann 0501234567 ann@example.com 12-06-1990")
	h.run(t, "add Bob 0671112233")

	t.Run("list renders a table with every contact", func(t *testing.T) {
		out := h.run(t, "list")
		assert.Contains(t, out, "Ann")
		assert.Contains(t, out, "Bob")
		assert.Contains(t, out, "+380501234567")
	})

	t.Run("search narrows by fragment", func(t *testing.T) {
		out := h.run(t, "search ann")
		assert.Contains(t, out, "Ann")
		assert.NotContains(t, out, "Bob")
	})

	t.Run("search miss", func(t *testing.T) {
		out := h.run(t, "search zzz")
		assert.Contains(t, out, "No contacts found")
	})

	t.Run("all includes notes and tags columns", func(t *testing.T) {
		h.run(t, "add_note Ann 'gift ideas'")
		h.run(t, "add_tag Ann vip")
		out := h.run(t, "all")
		assert.Contains(t, out, "gift ideas")
		assert.Contains(t, out, "vip")
	})
}

func TestHandleBirthdays(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann 0501234567")

	t.Run("days_to_bday without birthday", func(t *testing.T) {
		out := h.run(t, "days_to_bday Ann")
		assert.Contains(t, out, "Invalid input")
	})

	t.Run("birthdays rejects a non-numeric window", func(t *testing.T) {
		out := h.run(t, "birthdays soon")
		assert.Contains(t, out, "Days must be a number.")
	})

	t.Run("empty window message names the span", func(t *testing.T) {
		out := h.run(t, "birthdays")
		assert.Contains(t, out, "next 7 days")
	})

	t.Run("add_birthday then days_to_bday", func(t *testing.T) {
		h.run(t, "add_birthday Ann 12-06-1990")
		out := h.run(t, "days_to_bday Ann")
		assert.Contains(t, out, "Days until Ann's birthday")
	})
}

func TestHandleNotes(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann")

	t.Run("indexes are one-based on the surface", func(t *testing.T) {
		h.run(t, "add_note Ann first note")
		h.run(t, "add_note Ann second note")
		h.run(t, "edit_note Ann 2 'second note edited'")

		out := h.run(t, "list_notes Ann")
		assert.Contains(t, out, "1. first note")
		assert.Contains(t, out, "2. second note edited")
	})

	t.Run("delete_note shifts numbering", func(t *testing.T) {
		h.run(t, "delete_note Ann 1")
		out := h.run(t, "list_notes Ann")
		assert.Contains(t, out, "1. second note edited")
		assert.NotContains(t, out, "first note")
	})

	t.Run("non-numeric index", func(t *testing.T) {
		out := h.run(t, "delete_note Ann x")
		assert.Contains(t, out, "Index must be a number.")
	})

	t.Run("search_notes reports one-based numbers", func(t *testing.T) {
		out := h.run(t, "search_notes edited")
		assert.Contains(t, out, "Ann (note 1)")
	})

	t.Run("out of range index surfaces as not found", func(t *testing.T) {
		out := h.run(t, "delete_note Ann 9")
		assert.Contains(t, out, "Not found")
	})
}

func TestHandleTags(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann")
	h.run(t, "add Bob")

	h.run(t, "add_tag Ann VIP")
	h.run(t, "add_tag Bob vip")
	h.run(t, "add_tag Ann family")

	t.Run("list_tags shows normalized tags per contact", func(t *testing.T) {
		out := h.run(t, "list_tags")
		assert.Contains(t, out, "Ann: vip, family")
		assert.Contains(t, out, "Bob: vip")
	})

	t.Run("filter_by_tag is case-insensitive", func(t *testing.T) {
		out := h.run(t, "filter_by_tag VIP")
		assert.Contains(t, out, "Ann")
		assert.Contains(t, out, "Bob")
	})

	t.Run("remove_tag", func(t *testing.T) {
		h.run(t, "remove_tag Bob vip")
		out := h.run(t, "filter_by_tag vip")
		assert.NotContains(t, out, "Bob")
	})
}

func TestHandleImportExport(t *testing.T) {
	h := newHarness(t)
	h.run(t, "add Ann 0501234567 ann@example.com")
	path := filepath.Join(t.TempDir(), "book.json")

	out := h.run(t, "export "+path)
	assert.Contains(t, out, path)

	other := newHarness(t)
	out = other.run(t, "import "+path)
	assert.Contains(t, out, path)
	assert.Equal(t, 1, other.svc.Len())

	t.Run("unsupported extension", func(t *testing.T) {
		out := h.run(t, "export book.xml")
		assert.Contains(t, out, "Storage problem")
	})
}

func TestHandleDeleteAll(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t)
		h.run(t, "add Ann")
		h.answer = "YES"

		h.run(t, "delete_all")
		assert.Equal(t, 0, h.svc.Len())
	})

	t.Run("anything else cancels", func(t *testing.T) {
		h := newHarness(t)
		h.run(t, "add Ann")
		h.answer = "yes"

		out := h.run(t, "delete_all")
		assert.Contains(t, out, "canceled")
		assert.Equal(t, 1, h.svc.Len())
	})
}

func TestPrintHelp(t *testing.T) {
	h := newHarness(t)
	out := h.run(t, "help")

	for _, category := range categoryOrder {
		assert.Contains(t, out, category)
	}
	assert.Contains(t, out, "filter_by_tag <tag>")
	assert.Contains(t, out, "add <name> [phone] [email] [birthday]")
}
