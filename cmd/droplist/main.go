// Package main provides the entry point for the droplist demo application.
//
// Droplist is a TUI select widget built on The Elm Architecture (TEA):
// closed fields that open searchable, paginated dropdown panels with
// single or multiple selection. The demo wires two fields, one over a
// static list and one over a simulated remote source.
//
// Usage:
//
//	droplist
//
// Configuration is read from .droplist.json in the current directory.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/app"
	"droplist/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg)
	model.SetFetchDelay(150 * time.Millisecond)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
