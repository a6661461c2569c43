// Command scout simulates the card game Scout.
//
// Usage:
//
//	scout [play|watch|sim] [flags]
//
// Modes:
//
//	play   one game, you on --seat, bots elsewhere
//	watch  one all-bot game, every turn rendered
//	sim    --games concurrent bot games with a summary
//
// Flags: --players N, --seed N, --bonus N, --seat N, --games N,
// --no-color. Each flag falls back to the matching SCOUT_* environment
// variable (a .env file is honored).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dannunan/scout-game/engine"
	"github.com/dannunan/scout-game/internal/cli"
)

func main() {
	cfg, err := cli.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "scout: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: scout [play|watch|sim] [--players N] [--seed N] [--bonus N] [--seat N] [--games N] [--no-color]")
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg.Mode != "sim" {
		logger.SetLevel(logrus.WarnLevel)
	}

	switch cfg.Mode {
	case "play":
		err = cli.Play(cfg, os.Stdin, os.Stdout)
	case "watch":
		err = cli.Watch(cfg, os.Stdout)
	case "sim":
		err = cli.Sim(cfg, os.Stdout, logger)
	}
	if err != nil {
		var halt *engine.HaltError
		if !errors.As(err, &halt) {
			// Halts are already rendered; anything else gets a line here.
			fmt.Fprintf(os.Stderr, "scout: %v\n", err)
		}
		os.Exit(1)
	}
}
