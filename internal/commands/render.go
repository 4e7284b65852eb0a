package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"contact-book/internal/book"
	"contact-book/internal/common/errors"
	"contact-book/internal/service"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.FgMagenta, color.Bold)
)

// Context carries everything a handler needs: the service, the output sink
// and a prompt callback for commands that need an extra confirmation line.
type Context struct {
	Service *service.AddressBookService
	Out     io.Writer

	// LookaheadDays is the default window for the birthdays command
	LookaheadDays int

	// Prompt reads one extra line from the user. The REPL wires it to the
	// live readline session; tests stub it.
	Prompt func(prompt string) (string, error)
}

// Success prints a green status line
func (c *Context) Success(msg string) {
	successColor.Fprintln(c.Out, msg)
}

// Error prints a red status line for an error. Application errors get a
// human label for their kind and drop the machine tag.
func (c *Context) Error(err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		errorColor.Fprintln(c.Out, kindPrefix(err)+appErr.Message)
		return
	}
	errorColor.Fprintln(c.Out, err.Error())
}

// Errorf prints a red status line
func (c *Context) Errorf(format string, args ...any) {
	errorColor.Fprintf(c.Out, format+"\n", args...)
}

// Info prints a neutral status line
func (c *Context) Info(msg string) {
	infoColor.Fprintln(c.Out, msg)
}

// Printf prints unstyled output
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Welcome prints the greeting line
func (c *Context) Welcome() {
	successColor.Fprintln(c.Out, welcomeMessage)
}

// Goodbye prints the farewell line
func (c *Context) Goodbye() {
	successColor.Fprintln(c.Out, goodbyeMessage)
}

// WrongLanguage prints the redirect shown for non-ASCII input
func (c *Context) WrongLanguage() {
	infoColor.Fprintln(c.Out, pick(wrongLanguageMessages))
}

// newTable builds a table with the house style
func (c *Context) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.Out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	return table
}

const emptyCell = "-"

func orDash(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

func joinOrDash(values []string, sep string) string {
	if len(values) == 0 {
		return emptyCell
	}
	return strings.Join(values, sep)
}

// contactRow flattens a record into the short four-column form
func contactRow(record *book.Record) []string {
	phones := make([]string, 0, len(record.Phones()))
	for _, p := range record.Phones() {
		phones = append(phones, p.Value)
	}

	email := emptyCell
	if e, ok := record.Email(); ok {
		email = e.Value
	}
	birthday := emptyCell
	if b, ok := record.Birthday(); ok {
		birthday = b.Value
	}

	return []string{record.Name(), joinOrDash(phones, ", "), email, birthday}
}

// detailRow flattens a record into the full form including the birthday
// countdown, notes and tags
func (c *Context) detailRow(record *book.Record) []string {
	row := contactRow(record)

	daysUntil := emptyCell
	if days, err := c.Service.DaysToBirthday(record.Name()); err == nil {
		daysUntil = strconv.Itoa(days)
	}

	return append(row,
		daysUntil,
		joinOrDash(record.Notes(), "; "),
		joinOrDash(record.Tags(), ", "),
	)
}

func (c *Context) printContactsTable(records []*book.Record) {
	table := c.newTable([]string{"Name", "Phones", "Email", "Birthday"})
	for _, record := range records {
		table.Append(contactRow(record))
	}
	table.Render()
}

func (c *Context) printDetailsTable(records []*book.Record) {
	table := c.newTable([]string{"Name", "Phones", "Email", "Birthday", "Days to B-day", "Notes", "Tags"})
	for _, record := range records {
		table.Append(c.detailRow(record))
	}
	table.Render()
}

// kindPrefix maps an error kind to a short user-facing label
func kindPrefix(err error) string {
	switch errors.GetKind(err) {
	case errors.KindValidation:
		return "Invalid input: "
	case errors.KindContactNotFound, errors.KindPhoneNotFound, errors.KindNoteNotFound:
		return "Not found: "
	case errors.KindDuplicateContact, errors.KindDuplicatePhone, errors.KindDuplicateEmail:
		return "Duplicate: "
	case errors.KindStorage:
		return "Storage problem: "
	default:
		return ""
	}
}
