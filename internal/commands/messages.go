package commands

import (
	"fmt"
	"math/rand"
)

// Message variants per outcome group. Every variant takes the same verb
// placeholders, so pick stays format-agnostic.
var (
	unknownCommandMessages = []string{
		"Unknown command '%s'. Type 'help' to see what I can do.",
		"I don't know '%s' yet. 'help' lists the commands I understand.",
		"'%s' is not a command. Try 'help'.",
	}
	missingArgsMessages = []string{
		"Missing arguments. Usage: %s",
		"I need a bit more than that. Usage: %s",
		"Not enough arguments. Usage: %s",
	}
	contactAddedMessages = []string{
		"Contact '%s' saved.",
		"'%s' is in the book now.",
		"Added '%s' to your contacts.",
	}
	contactUpdatedMessages = []string{
		"Contact '%s' updated.",
		"Refreshed '%s'.",
		"'%s' now has the new details.",
	}
	contactDeletedMessages = []string{
		"Contact '%s' deleted.",
		"'%s' is gone from the book.",
		"Removed '%s'.",
	}
	phoneAddedMessages = []string{
		"Extra phone stored for '%s'.",
		"'%s' has one more phone now.",
	}
	phoneUpdatedMessages = []string{
		"Phone updated for '%s'.",
		"'%s' carries the new number now.",
	}
	emailUpdatedMessages = []string{
		"Email saved for '%s'.",
		"'%s' has a fresh email now.",
	}
	birthdayUpdatedMessages = []string{
		"Birthday saved for '%s'.",
		"I'll keep an eye on the big day of '%s'.",
	}
	noteAddedMessages = []string{
		"Note added for '%s'.",
		"Jotted that down for '%s'.",
	}
	noteUpdatedMessages = []string{
		"Note updated for '%s'.",
		"Rewrote that note for '%s'.",
	}
	noteDeletedMessages = []string{
		"Note deleted for '%s'.",
		"That note for '%s' is gone.",
	}
	tagAddedMessages = []string{
		"Tagged '%s'.",
		"'%s' wears a new tag now.",
	}
	tagRemovedMessages = []string{
		"Tag removed from '%s'.",
		"'%s' lost a tag.",
	}
	importSuccessMessages = []string{
		"Imported contacts from %s.",
		"Loaded your book from %s.",
	}
	exportSuccessMessages = []string{
		"Exported contacts to %s.",
		"Your book is safe in %s.",
	}
	deleteAllMessages = []string{
		"The book is empty now. A fresh start.",
		"Everything wiped. Clean slate.",
	}
	wrongLanguageMessages = []string{
		"I only speak ASCII for now. Could you rephrase?",
		"Those characters are beyond me. Plain English, please.",
	}
	welcomeMessage = "Hello! I am your contact assistant. Type 'help' to get started."
	goodbyeMessage = "Good bye! Your contacts are saved."
)

// pick formats a random variant from a message group
func pick(group []string, args ...any) string {
	return fmt.Sprintf(group[rand.Intn(len(group))], args...)
}
