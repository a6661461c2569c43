// Package cli implements the scout binary: configuration, rendering,
// and the play/watch/sim modes.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dannunan/scout-game/engine"
)

// Config is the resolved CLI configuration. Values come from .env /
// environment (SCOUT_* keys) with command-line flags taking precedence.
type Config struct {
	Mode    string // play | watch | sim
	Players int
	Seed    uint64
	Bonus   int // winner bonus points
	Seat    int // human seat in play mode
	Games   int // game count in sim mode
	NoColor bool
}

// Rules returns the engine rules implied by the config.
func (c Config) Rules() engine.Rules {
	r := engine.DefaultRules()
	r.WinnerBonus = c.Bonus
	return r
}

// Load resolves configuration from .env, the environment, and args, in
// increasing precedence. The first bare argument selects the mode.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Mode:    "watch",
		Players: atoiDef(os.Getenv("SCOUT_PLAYERS"), 4),
		Seed:    u64Def(os.Getenv("SCOUT_SEED"), uint64(time.Now().UnixNano())),
		Bonus:   atoiDef(os.Getenv("SCOUT_BONUS"), engine.DefaultRules().WinnerBonus),
		Seat:    atoiDef(os.Getenv("SCOUT_SEAT"), 0),
		Games:   atoiDef(os.Getenv("SCOUT_GAMES"), 8),
		NoColor: asBool(os.Getenv("SCOUT_NO_COLOR")),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		next := func() (string, error) {
			i++
			if i >= len(args) {
				return "", fmt.Errorf("flag %s needs a value", arg)
			}
			return args[i], nil
		}
		var err error
		switch arg {
		case "play", "watch", "sim":
			cfg.Mode = arg
		case "--players":
			var v string
			if v, err = next(); err == nil {
				cfg.Players, err = parseInt(arg, v)
			}
		case "--seed":
			var v string
			if v, err = next(); err == nil {
				cfg.Seed, err = parseU64(arg, v)
			}
		case "--bonus":
			var v string
			if v, err = next(); err == nil {
				cfg.Bonus, err = parseInt(arg, v)
			}
		case "--seat":
			var v string
			if v, err = next(); err == nil {
				cfg.Seat, err = parseInt(arg, v)
			}
		case "--games":
			var v string
			if v, err = next(); err == nil {
				cfg.Games, err = parseInt(arg, v)
			}
		case "--no-color":
			cfg.NoColor = true
		default:
			return cfg, fmt.Errorf("unknown argument %q", arg)
		}
		if err != nil {
			return cfg, err
		}
	}

	if cfg.Players < engine.MinPlayers || cfg.Players > engine.MaxPlayers {
		return cfg, fmt.Errorf("players must be %d..%d, got %d", engine.MinPlayers, engine.MaxPlayers, cfg.Players)
	}
	if cfg.Seat < 0 || cfg.Seat >= cfg.Players {
		return cfg, fmt.Errorf("seat must be 0..%d, got %d", cfg.Players-1, cfg.Seat)
	}
	if cfg.Games < 1 {
		return cfg, fmt.Errorf("games must be at least 1, got %d", cfg.Games)
	}
	return cfg, nil
}

func parseInt(flag, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad value %q for %s", s, flag)
	}
	return n, nil
}

func parseU64(flag, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q for %s", s, flag)
	}
	return n, nil
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func u64Def(s string, def uint64) uint64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
