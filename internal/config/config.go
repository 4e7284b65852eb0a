// Package config provides configuration management for the contact book
// application. It handles loading configuration from environment variables
// with sensible defaults and validates the configuration so the application
// starts safely.
//
// Environment Variables:
//
// Data:
//   - DATA_FILE: book file loaded at startup and saved on exit (default: ./contacts.json);
//     the extension selects the codec (.json, .csv, .vcf)
//
// Logging:
//   - LOG_LEVEL: logging level (default: info)
//   - LOG_FILE: log file path (default: ./contact-book.log)
//
// Interactive session:
//   - HISTORY_FILE: readline history file (default: ./.contact_book_history)
//   - BIRTHDAY_LOOKAHEAD_DAYS: default window for the birthdays command (default: 7)
//   - AUTO_HELP_THRESHOLD: consecutive failed inputs before the help menu is
//     shown automatically (default: 3)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration values for the contact book application.
// All fields correspond to environment variables that can be set to override
// the default values.
//
// The configuration is loaded using the Load() function and should be
// validated using the Validate() method before use.
type Config struct {
	// Data file settings
	DataFile string // Book file path; extension selects the codec

	// Logging settings
	LogLevel string // Logging level (debug, info, warn, error)
	LogFile  string // Log file path

	// Interactive session settings
	HistoryFile           string // Readline history file path
	BirthdayLookaheadDays int    // Default window for upcoming-birthday scans
	AutoHelpThreshold     int    // Consecutive errors before auto-help fires
}

// Load creates a new Config instance with values loaded from environment
// variables. If an environment variable is not set, the corresponding
// default value is used.
//
// This function does not validate the configuration - call Validate() on the
// returned Config to ensure all values are valid.
func Load() *Config {
	return &Config{
		DataFile: getEnv("DATA_FILE", "./contacts.json"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "./contact-book.log"),

		HistoryFile:           getEnv("HISTORY_FILE", "./.contact_book_history"),
		BirthdayLookaheadDays: getIntEnv("BIRTHDAY_LOOKAHEAD_DAYS", 7),
		AutoHelpThreshold:     getIntEnv("AUTO_HELP_THRESHOLD", 3),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves an integer environment variable value or returns a
// default value if the variable is not set or not a valid integer
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// dataExtensions lists the codec extensions a DATA_FILE may carry. The .ics
// codec is export-only, so it is not a valid book file.
var dataExtensions = map[string]bool{
	".json": true,
	".csv":  true,
	".vcf":  true,
}

// Validate checks that all configuration values are present and valid.
// The application should call this after loading configuration and before
// starting the interactive session.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("DATA_FILE must not be empty")
	}

	ext := filepath.Ext(c.DataFile)
	if !dataExtensions[ext] {
		return fmt.Errorf("DATA_FILE must end in .json, .csv or .vcf, got %q", ext)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
		// Valid log levels
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.BirthdayLookaheadDays < 0 || c.BirthdayLookaheadDays > 365 {
		return fmt.Errorf("BIRTHDAY_LOOKAHEAD_DAYS must be between 0 and 365")
	}

	if c.AutoHelpThreshold < 1 {
		return fmt.Errorf("AUTO_HELP_THRESHOLD must be a positive number")
	}

	return nil
}
