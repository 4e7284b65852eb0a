package commands

import (
	"strings"

	"contact-book/internal/common/errors"
)

// SplitArgs breaks a command line into fields, honoring single and double
// quotes so multi-word names and note texts survive as one argument.
// An unterminated quote is a validation error.
func SplitArgs(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		quote   rune
		inField bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t':
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if quote != 0 {
		return nil, errors.ValidationError("unterminated quote in input")
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields, nil
}
