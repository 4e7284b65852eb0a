package app

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"contact-book/internal/commands"
	"contact-book/internal/common/logging"
	"contact-book/internal/config"
	"contact-book/internal/service"
)

// App wires a Session to a readline terminal
type App struct {
	session *Session
	rl      *readline.Instance
}

// New builds the interactive application around a service
func New(svc *service.AddressBookService, cfg *config.Config) (*App, error) {
	ctx := &commands.Context{
		Service:       svc,
		Out:           os.Stdout,
		LookaheadDays: cfg.BirthdayLookaheadDays,
	}
	session := NewSession(ctx, cfg.AutoHelpThreshold)

	prompt := color.New(color.FgCyan, color.Bold).Sprint("bot> ")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    buildCompleter(session),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	// delete_all asks for its confirmation line through the live terminal
	ctx.Prompt = func(question string) (string, error) {
		rl.SetPrompt(question)
		defer rl.SetPrompt(prompt)
		line, err := rl.Readline()
		return strings.TrimSpace(line), err
	}

	return &App{
		session: session,
		rl:      rl,
	}, nil
}

// buildCompleter completes command names at line start and live tag values
// for the tag-taking commands
func buildCompleter(session *Session) readline.AutoCompleter {
	svc := session.Context().Service
	tagLister := func(string) []string {
		return svc.UniqueTags()
	}
	nameLister := func(string) []string {
		names := make([]string, 0, svc.Len())
		for _, record := range svc.AllContacts() {
			names = append(names, record.Name())
		}
		return names
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(session.Registry().Names()))
	for _, name := range session.Registry().Names() {
		switch name {
		case "filter_by_tag":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(tagLister)))
		case "remove_tag", "add_tag":
			items = append(items, readline.PcItem(name,
				readline.PcItemDynamic(nameLister, readline.PcItemDynamic(tagLister))))
		case "phone", "delete", "change", "add_phone", "add_email", "add_birthday",
			"days_to_bday", "add_note", "edit_note", "delete_note", "list_notes":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(nameLister)))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// Run drives the read-dispatch loop until exit, interrupt or EOF
func (a *App) Run() error {
	defer a.rl.Close()

	a.session.Context().Welcome()
	logging.Info("interactive session started")

	for {
		line, err := a.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if a.session.HandleLine(line) {
			break
		}
	}

	a.session.Context().Goodbye()
	logging.Info("interactive session ended")
	return nil
}
