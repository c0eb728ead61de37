package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"twenty48/internal/client"
	"twenty48/internal/config"
	"twenty48/internal/scores"
	"twenty48/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("TWENTY48_DEBUG") != "" {
		f, err := tea.LogToFile("twenty48.log", "twenty48")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	table, err := scores.Load(cfg.ScoreFile)
	if err != nil {
		fmt.Printf("Error loading scores: %v\n", err)
		os.Exit(1)
	}

	cli := client.New(cfg.APIBaseURL, time.Duration(cfg.RequestTimeout))

	if err := tui.Run(cfg, cli, table); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
