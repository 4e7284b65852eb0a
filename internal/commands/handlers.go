package commands

import (
	"fmt"
	"strconv"
	"strings"

	"contact-book/internal/service"
	"contact-book/internal/storage"
)

func (r *Registry) registerAll() {
	r.register(&Command{
		Name: "help", Usage: "help",
		Description: "Show available commands",
		Category:    categorySystem,
		Handler:     func([]string) { r.PrintHelp() },
	})
	r.register(&Command{
		Name: "add", Usage: "add <name> [phone] [email] [birthday]",
		Description: "Add a contact or extend an existing one",
		Category:    categoryContacts,
		Handler:     r.handleAdd,
	})
	r.register(&Command{
		Name: "change", Usage: "change <name> <old_phone> <new_phone>",
		Description: "Replace one phone of a contact",
		Category:    categoryContacts,
		Handler:     r.handleChange,
	})
	r.register(&Command{
		Name: "add_phone", Usage: "add_phone <name> <phone>",
		Description: "Add an extra phone to a contact",
		Category:    categoryContacts,
		Handler:     r.handleAddPhone,
	})
	r.register(&Command{
		Name: "phone", Usage: "phone <name>",
		Description: "Show a contact's phones",
		Category:    categoryContacts,
		Handler:     r.handlePhone,
	})
	r.register(&Command{
		Name: "delete", Usage: "delete <name>",
		Description: "Delete a contact",
		Category:    categoryContacts,
		Handler:     r.handleDelete,
	})
	r.register(&Command{
		Name: "search", Usage: "search <query>",
		Description: "Search contacts by name, phone or email",
		Category:    categoryContacts,
		Handler:     r.handleSearch,
	})
	r.register(&Command{
		Name: "list", Usage: "list",
		Description: "List all contacts",
		Category:    categoryContacts,
		Handler:     r.handleList,
	})
	r.register(&Command{
		Name: "all", Usage: "all",
		Description: "Show all contact details",
		Category:    categoryContacts,
		Handler:     r.handleAll,
	})
	r.register(&Command{
		Name: "add_email", Usage: "add_email <name> <email>",
		Description: "Set a contact's email",
		Category:    categoryContacts,
		Handler:     r.handleAddEmail,
	})
	r.register(&Command{
		Name: "add_birthday", Usage: "add_birthday <name> <DD-MM-YYYY>",
		Description: "Set a contact's birthday",
		Category:    categoryContacts,
		Handler:     r.handleAddBirthday,
	})
	r.register(&Command{
		Name: "days_to_bday", Usage: "days_to_bday <name>",
		Description: "Days until a contact's next birthday",
		Category:    categoryContacts,
		Handler:     r.handleDaysToBday,
	})
	r.register(&Command{
		Name: "birthdays", Usage: "birthdays [days]",
		Description: "Contacts with birthdays in the coming days",
		Category:    categoryContacts,
		Handler:     r.handleBirthdays,
	})
	r.register(&Command{
		Name: "add_note", Usage: "add_note <name> <text>",
		Description: "Add a note to a contact",
		Category:    categoryNotes,
		Handler:     r.handleAddNote,
	})
	r.register(&Command{
		Name: "edit_note", Usage: "edit_note <name> <index> <text>",
		Description: "Replace a contact's note by its number",
		Category:    categoryNotes,
		Handler:     r.handleEditNote,
	})
	r.register(&Command{
		Name: "delete_note", Usage: "delete_note <name> <index>",
		Description: "Delete a contact's note by its number",
		Category:    categoryNotes,
		Handler:     r.handleDeleteNote,
	})
	r.register(&Command{
		Name: "search_notes", Usage: "search_notes <query>",
		Description: "Search all notes",
		Category:    categoryNotes,
		Handler:     r.handleSearchNotes,
	})
	r.register(&Command{
		Name: "list_notes", Usage: "list_notes [name]",
		Description: "List notes of one or all contacts",
		Category:    categoryNotes,
		Handler:     r.handleListNotes,
	})
	r.register(&Command{
		Name: "add_tag", Usage: "add_tag <name> <tag>",
		Description: "Attach a tag to a contact",
		Category:    categoryTags,
		Handler:     r.handleAddTag,
	})
	r.register(&Command{
		Name: "remove_tag", Usage: "remove_tag <name> <tag>",
		Description: "Detach a tag from a contact",
		Category:    categoryTags,
		Handler:     r.handleRemoveTag,
	})
	r.register(&Command{
		Name: "list_tags", Usage: "list_tags",
		Description: "List every contact's tags",
		Category:    categoryTags,
		Handler:     r.handleListTags,
	})
	r.register(&Command{
		Name: "filter_by_tag", Usage: "filter_by_tag <tag>",
		Description: "Show contacts carrying a tag",
		Category:    categoryTags,
		Handler:     r.handleFilterByTag,
	})
	r.register(&Command{
		Name: "import", Usage: "import <file.json|csv|vcf>",
		Description: "Import contacts from a file",
		Category:    categorySystem,
		Handler:     r.handleImport,
	})
	r.register(&Command{
		Name: "export", Usage: "export <file.json|csv|vcf|ics>",
		Description: "Export contacts to a file",
		Category:    categorySystem,
		Handler:     r.handleExport,
	})
	r.register(&Command{
		Name: "delete_all", Usage: "delete_all",
		Description: "Delete every contact, note and tag",
		Category:    categorySystem,
		Handler:     r.handleDeleteAll,
	})
	r.register(&Command{
		Name: "exit", Usage: "exit",
		Description: "Exit the application",
		Category:    categorySystem,
		Quits:       true,
	})
	r.register(&Command{
		Name: "close", Usage: "close",
		Description: "Exit the application",
		Category:    categorySystem,
		Quits:       true,
	})
}

// require checks the argument count and prints the usage line when short
func (r *Registry) require(args []string, n int, usage string) bool {
	if len(args) < n {
		r.ctx.Errorf(pick(missingArgsMessages, usage))
		return false
	}
	return true
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (r *Registry) handleAdd(args []string) {
	if !r.require(args, 1, "add <name> [phone] [email] [birthday]") {
		return
	}
	name := args[0]

	applied, err := r.ctx.Service.AddContact(name, argOr(args, 1), argOr(args, 2), argOr(args, 3))

	created := false
	for _, change := range applied {
		if change == service.ChangeContactCreated {
			created = true
		}
	}
	switch {
	case created:
		r.ctx.Success(pick(contactAddedMessages, name))
	case len(applied) > 0:
		r.ctx.Success(pick(contactUpdatedMessages, name) +
			" (Changed: " + strings.Join(applied, ", ") + ")")
	case err == nil:
		r.ctx.Info(fmt.Sprintf("Contact '%s' already up to date.", name))
	}
	if err != nil {
		r.ctx.Error(err)
	}
}

func (r *Registry) handleChange(args []string) {
	if !r.require(args, 3, "change <name> <old_phone> <new_phone>") {
		return
	}
	if err := r.ctx.Service.ChangePhone(args[0], args[1], args[2]); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(phoneUpdatedMessages, args[0]))
}

func (r *Registry) handleAddPhone(args []string) {
	if !r.require(args, 2, "add_phone <name> <phone>") {
		return
	}
	if err := r.ctx.Service.AddPhoneToContact(args[0], args[1]); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(phoneAddedMessages, args[0]))
}

func (r *Registry) handlePhone(args []string) {
	if !r.require(args, 1, "phone <name>") {
		return
	}
	record, err := r.ctx.Service.GetContact(args[0])
	if err != nil {
		r.ctx.Error(err)
		return
	}

	phones := make([]string, 0, len(record.Phones()))
	for _, p := range record.Phones() {
		phones = append(phones, p.Value)
	}
	if len(phones) == 0 {
		r.ctx.Printf("%s: no phones\n", record.Name())
		return
	}
	r.ctx.Printf("%s: %s\n", record.Name(), strings.Join(phones, ", "))
}

func (r *Registry) handleDelete(args []string) {
	if !r.require(args, 1, "delete <name>") {
		return
	}
	if err := r.ctx.Service.DeleteContact(args[0]); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(contactDeletedMessages, args[0]))
}

func (r *Registry) handleSearch(args []string) {
	if !r.require(args, 1, "search <query>") {
		return
	}
	results := r.ctx.Service.SearchContacts(args[0])
	if len(results) == 0 {
		r.ctx.Info(fmt.Sprintf("No contacts found matching '%s'", args[0]))
		return
	}
	r.ctx.printContactsTable(results)
}

func (r *Registry) handleList(_ []string) {
	records := r.ctx.Service.AllContacts()
	if len(records) == 0 {
		r.ctx.Info("No contacts found.")
		return
	}
	r.ctx.printContactsTable(records)
}

func (r *Registry) handleAll(_ []string) {
	records := r.ctx.Service.AllContacts()
	if len(records) == 0 {
		r.ctx.Info("No contacts found.")
		return
	}
	r.ctx.printDetailsTable(records)
}

func (r *Registry) handleAddEmail(args []string) {
	if !r.require(args, 2, "add_email <name> <email>") {
		return
	}
	if err := r.ctx.Service.AddEmail(args[0], args[1]); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(emailUpdatedMessages, args[0]))
}

func (r *Registry) handleAddBirthday(args []string) {
	if !r.require(args, 2, "add_birthday <name> <DD-MM-YYYY>") {
		return
	}
	if err := r.ctx.Service.AddBirthday(args[0], args[1]); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(birthdayUpdatedMessages, args[0]))
}

func (r *Registry) handleDaysToBday(args []string) {
	if !r.require(args, 1, "days_to_bday <name>") {
		return
	}
	days, err := r.ctx.Service.DaysToBirthday(args[0])
	if err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Info(fmt.Sprintf("Days until %s's birthday: %d", args[0], days))
}

func (r *Registry) handleBirthdays(args []string) {
	days := r.ctx.LookaheadDays
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			r.ctx.Errorf("Days must be a number.")
			return
		}
		days = parsed
	}

	upcoming := r.ctx.Service.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		r.ctx.Info(fmt.Sprintf("No birthdays in the next %d days.", days))
		return
	}

	table := r.ctx.newTable([]string{"Name", "Birthday", "In days"})
	for _, entry := range upcoming {
		table.Append([]string{entry.Name, entry.Birthday, strconv.Itoa(entry.DaysUntil)})
	}
	table.Render()
}

func (r *Registry) handleAddNote(args []string) {
	if !r.require(args, 2, "add_note <name> <text>") {
		return
	}
	if err := r.ctx.Service.AddNote(args[0], strings.Join(args[1:], " ")); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(noteAddedMessages, args[0]))
}

// noteIndex converts the 1-based CLI note number into the core's 0-based index
func (r *Registry) noteIndex(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.ctx.Errorf("Index must be a number.")
		return 0, false
	}
	return n - 1, true
}

func (r *Registry) handleEditNote(args []string) {
	if !r.require(args, 3, "edit_note <name> <index> <text>") {
		return
	}
	index, ok := r.noteIndex(args[1])
	if !ok {
		return
	}
	if err := r.ctx.Service.EditNote(args[0], index, strings.Join(args[2:], " ")); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(noteUpdatedMessages, args[0]))
}

func (r *Registry) handleDeleteNote(args []string) {
	if !r.require(args, 2, "delete_note <name> <index>") {
		return
	}
	index, ok := r.noteIndex(args[1])
	if !ok {
		return
	}
	if err := r.ctx.Service.DeleteNote(args[0], index); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(noteDeletedMessages, args[0]))
}

func (r *Registry) handleSearchNotes(args []string) {
	if !r.require(args, 1, "search_notes <query>") {
		return
	}
	matches := r.ctx.Service.SearchNotes(args[0])
	if len(matches) == 0 {
		r.ctx.Info(fmt.Sprintf("No notes found matching '%s'", args[0]))
		return
	}
	for _, match := range matches {
		r.ctx.Printf("%s (note %d): %s\n", match.Contact, match.Index+1, match.Note)
	}
}

func (r *Registry) handleListNotes(args []string) {
	name := argOr(args, 0)
	notes, err := r.ctx.Service.GetNotes(name)
	if err != nil {
		r.ctx.Error(err)
		return
	}
	if len(notes) == 0 || (name != "" && len(notes[name]) == 0) {
		suffix := ""
		if name != "" {
			suffix = " for " + name
		}
		r.ctx.Info(fmt.Sprintf("No notes found%s.", suffix))
		return
	}

	// iterate records, not the map, to keep output order stable
	for _, record := range r.ctx.Service.AllContacts() {
		list, ok := notes[record.Name()]
		if !ok || len(list) == 0 {
			continue
		}
		r.ctx.Printf("%s:\n", record.Name())
		for i, note := range list {
			r.ctx.Printf("  %d. %s\n", i+1, note)
		}
	}
}

func (r *Registry) handleAddTag(args []string) {
	if !r.require(args, 2, "add_tag <name> <tag>") {
		return
	}
	if err := r.ctx.Service.AddTag(args[0], strings.Join(args[1:], " ")); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(tagAddedMessages, args[0]))
}

func (r *Registry) handleRemoveTag(args []string) {
	if !r.require(args, 2, "remove_tag <name> <tag>") {
		return
	}
	if err := r.ctx.Service.RemoveTag(args[0], strings.Join(args[1:], " ")); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(tagRemovedMessages, args[0]))
}

func (r *Registry) handleListTags(_ []string) {
	tags := r.ctx.Service.AllTags()
	if len(tags) == 0 {
		r.ctx.Info("No tags found.")
		return
	}
	for _, record := range r.ctx.Service.AllContacts() {
		if list := tags[record.Name()]; len(list) > 0 {
			r.ctx.Printf("%s: %s\n", record.Name(), strings.Join(list, ", "))
		}
	}
}

func (r *Registry) handleFilterByTag(args []string) {
	if !r.require(args, 1, "filter_by_tag <tag>") {
		return
	}
	tag := strings.Join(args, " ")
	records := r.ctx.Service.FilterByTag(tag)
	if len(records) == 0 {
		r.ctx.Info(fmt.Sprintf("No contacts found with tag '%s'", tag))
		return
	}
	r.ctx.printDetailsTable(records)
}

func (r *Registry) handleImport(args []string) {
	if !r.require(args, 1, "import <path>") {
		return
	}
	path := args[0]
	if err := storage.Import(r.ctx.Service, path); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(importSuccessMessages, path))
}

func (r *Registry) handleExport(args []string) {
	if !r.require(args, 1, "export <path>") {
		return
	}
	path := args[0]
	if err := storage.Export(r.ctx.Service, path); err != nil {
		r.ctx.Error(err)
		return
	}
	r.ctx.Success(pick(exportSuccessMessages, path))
}

func (r *Registry) handleDeleteAll(_ []string) {
	r.ctx.Errorf("WARNING: this deletes ALL contacts, notes and tags.")
	if r.ctx.Prompt == nil {
		r.ctx.Info("Operation canceled. Your data is safe.")
		return
	}

	answer, err := r.ctx.Prompt("Are you sure? Type 'YES' to confirm: ")
	if err != nil || answer != "YES" {
		r.ctx.Info("Operation canceled. Your data is safe.")
		return
	}

	r.ctx.Service.DeleteAll()
	r.ctx.Success(pick(deleteAllMessages))
}
