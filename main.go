package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"contact-book/internal/app"
	"contact-book/internal/book"
	"contact-book/internal/common/logging"
	"contact-book/internal/config"
	"contact-book/internal/service"
	"contact-book/internal/storage"
)

func main() {
	// A missing .env is fine, the defaults cover everything
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logging. Logs go to a file: stdout belongs to the prompt.
	if err := logging.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.MustSync()

	// Build the book and its service boundary
	svc := service.New(book.New(), logging.GetGlobalLogger())

	// Load the persisted book if one exists
	if _, err := os.Stat(cfg.DataFile); err == nil {
		if err := storage.Import(svc, cfg.DataFile); err != nil {
			fmt.Printf("Could not load %s: %v\n", cfg.DataFile, err)
			fmt.Println("Starting with an empty book.")
		}
	}

	// Run the interactive loop
	application, err := app.New(svc, cfg)
	if err != nil {
		log.Fatalf("Failed to start the prompt: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	// Persist the book on the way out
	if err := storage.Export(svc, cfg.DataFile); err != nil {
		fmt.Printf("Could not save %s: %v\n", cfg.DataFile, err)
	}
}
