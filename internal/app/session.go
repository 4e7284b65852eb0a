// Package app runs the interactive prompt: a readline loop in front of the
// command registry, with history, autocompletion and an auto-help nudge after
// repeated input errors.
package app

import (
	"strings"
	"unicode"

	"contact-book/internal/commands"
)

// Session is the terminal-independent part of the REPL: it owns the command
// registry and the consecutive-error counter, and turns one input line into
// one dispatch.
type Session struct {
	ctx      *commands.Context
	registry *commands.Registry

	autoHelpThreshold int
	consecutiveErrors int
}

// NewSession builds a session around an already-populated context
func NewSession(ctx *commands.Context, autoHelpThreshold int) *Session {
	return &Session{
		ctx:               ctx,
		registry:          commands.NewRegistry(ctx),
		autoHelpThreshold: autoHelpThreshold,
	}
}

// Registry exposes the command set for autocompletion
func (s *Session) Registry() *commands.Registry {
	return s.registry
}

// Context returns the session's command context
func (s *Session) Context() *commands.Context {
	return s.ctx
}

// HandleLine processes one raw input line and reports whether the user asked
// to quit. Empty, non-ASCII and unknown input counts toward the auto-help
// threshold; any recognized command resets the counter.
func (s *Session) HandleLine(line string) (quit bool) {
	line = strings.TrimSpace(line)

	if line == "" {
		s.countError()
		return false
	}
	if !isASCII(line) {
		s.ctx.WrongLanguage()
		s.countError()
		return false
	}

	fields, err := commands.SplitArgs(line)
	if err != nil {
		s.ctx.Error(err)
		s.countError()
		return false
	}

	quit, known := s.registry.Execute(strings.ToLower(fields[0]), fields[1:])
	if known {
		s.consecutiveErrors = 0
	} else {
		s.countError()
	}
	return quit
}

func (s *Session) countError() {
	s.consecutiveErrors++
	if s.consecutiveErrors < s.autoHelpThreshold {
		return
	}
	s.ctx.Info("You seem lost. Here is the help menu:")
	s.registry.PrintHelp()
	s.consecutiveErrors = 0
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
