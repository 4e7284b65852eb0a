// Package commands maps command names to handlers and renders their output.
// The registry is built once at startup; the REPL dispatches into it and
// reads it back for autocompletion and the help menu.
package commands

import (
	"sort"
)

// Handler executes one command against the context it was registered with
type Handler func(args []string)

// Command is one registry entry
type Command struct {
	Name        string
	Usage       string
	Description string
	Category    string
	Quits       bool
	Handler     Handler
}

// Categories in help-menu order
const (
	categoryContacts = "Contact Management"
	categoryNotes    = "Notes"
	categoryTags     = "Tags"
	categorySystem   = "System & Data"
)

var categoryOrder = []string{categoryContacts, categoryNotes, categoryTags, categorySystem}

// Registry holds every command the application understands
type Registry struct {
	ctx      *Context
	commands map[string]*Command
	order    []string
}

// NewRegistry builds the full command set around a context
func NewRegistry(ctx *Context) *Registry {
	r := &Registry{
		ctx:      ctx,
		commands: make(map[string]*Command),
	}
	r.registerAll()
	return r
}

func (r *Registry) register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
}

// Names returns every command name, sorted, for autocompletion
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute dispatches one parsed command. It returns whether the command asks
// the application to quit and whether the name was known; handler errors are
// printed, never propagated, so the loop always survives.
func (r *Registry) Execute(name string, args []string) (quit bool, known bool) {
	cmd, ok := r.commands[name]
	if !ok {
		r.ctx.Errorf(pick(unknownCommandMessages, name))
		return false, false
	}

	if cmd.Handler != nil {
		cmd.Handler(args)
	}
	return cmd.Quits, true
}

// byCategory groups commands for the help menu, keeping registration order
// inside each group
func (r *Registry) byCategory() map[string][]*Command {
	groups := make(map[string][]*Command)
	for _, name := range r.order {
		cmd := r.commands[name]
		groups[cmd.Category] = append(groups[cmd.Category], cmd)
	}
	return groups
}

// PrintHelp renders the grouped help menu
func (r *Registry) PrintHelp() {
	headerColor.Fprintln(r.ctx.Out, "Assistant Bot Help Menu")

	groups := r.byCategory()
	for _, category := range categoryOrder {
		cmds := groups[category]
		if len(cmds) == 0 {
			continue
		}

		infoColor.Fprintln(r.ctx.Out, "\n"+category)
		table := r.ctx.newTable([]string{"Command", "Description"})
		for _, cmd := range cmds {
			table.Append([]string{cmd.Usage, cmd.Description})
		}
		table.Render()
	}
}
