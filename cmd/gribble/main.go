package main

import (
	"fmt"
	"log"
	"os"

	"github.com/obadao/gribble/internal/config"
	"github.com/obadao/gribble/internal/logger"
	"github.com/obadao/gribble/internal/ui"
)

func main() {
	cfg := config.FromFlags(os.Args[1:])

	// The TUI owns the terminal, so debug logging goes to a file instead
	// of fighting bubbletea for the screen.
	var lg logger.Logger = logger.Noop()
	if cfg.Debug {
		os.Setenv("GRIBBLE_DEBUG", "1")
		f, err := os.OpenFile("gribble.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
		lg = logger.NewEnvLogger("[gribble]")
	}

	if err := ui.Run(cfg, lg); err != nil {
		fmt.Fprintln(os.Stderr, "gribble:", err)
		os.Exit(1)
	}
}
