package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/handiism/chord-compiler/internal/config"
	"github.com/handiism/chord-compiler/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
	}

	settings := config.DefaultSettings()
	if len(os.Args) > 1 {
		var err error
		settings, err = config.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
