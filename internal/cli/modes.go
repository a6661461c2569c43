package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dannunan/scout-game/engine"
	"github.com/dannunan/scout-game/internal/host"
	"github.com/dannunan/scout-game/strategy"
)

// botTable fills every seat with bots: rush on even seats, seeded
// random on odd seats, except any seat claimed by human.
func botTable(cfg Config, human engine.Strategy) []engine.Strategy {
	strategies := make([]engine.Strategy, cfg.Players)
	for seat := range strategies {
		if human != nil && seat == cfg.Seat {
			strategies[seat] = human
			continue
		}
		if seat%2 == 0 {
			strategies[seat] = strategy.NewRush()
		} else {
			strategies[seat] = strategy.NewRandom(int64(cfg.Seed) + int64(seat))
		}
	}
	return strategies
}

// Play runs one game with a human on cfg.Seat and bots elsewhere.
func Play(cfg Config, in io.Reader, out io.Writer) error {
	g, err := engine.NewGame(cfg.Players, cfg.Seed, cfg.Rules())
	if err != nil {
		return err
	}
	g.Deal()

	r := NewRenderer(out, !cfg.NoColor)
	r.st.Section(out, fmt.Sprintf("scout: %d players, seed %d, you are seat %d", cfg.Players, cfg.Seed, cfg.Seat))

	strategies := botTable(cfg, strategy.NewInteractive(in, out))
	res, err := engine.Watch(g, strategies, r.Event)
	if err != nil {
		var halt *engine.HaltError
		if errors.As(err, &halt) {
			r.Halt(halt.State)
		}
		return err
	}
	r.Result(res)
	return nil
}

// Watch runs one all-bot game, rendering every committed turn.
func Watch(cfg Config, out io.Writer) error {
	g, err := engine.NewGame(cfg.Players, cfg.Seed, cfg.Rules())
	if err != nil {
		return err
	}
	g.Deal()

	r := NewRenderer(out, !cfg.NoColor)
	r.st.Section(out, fmt.Sprintf("scout: %d bots, seed %d", cfg.Players, cfg.Seed))

	res, err := engine.Watch(g, botTable(cfg, nil), r.Event)
	if err != nil {
		return err
	}
	r.Result(res)
	return nil
}

// Sim runs cfg.Games concurrent bot games through the host and prints a
// summary table.
func Sim(cfg Config, out io.Writer, logger *logrus.Logger) error {
	h := host.New(logger)
	st := Style{Color: !cfg.NoColor}
	st.Section(out, fmt.Sprintf("scout: %d games of %d bots, base seed %d", cfg.Games, cfg.Players, cfg.Seed))

	var mu sync.Mutex
	observed := 0
	h.Subscribe(func(ev host.Event) {
		mu.Lock()
		observed++
		mu.Unlock()
	})

	order := make([]string, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		id, err := h.Launch(host.GameSpec{
			Players:    cfg.Players,
			Seed:       cfg.Seed + uint64(i),
			Rules:      cfg.Rules(),
			Strategies: botTable(cfg, nil),
		})
		if err != nil {
			return err
		}
		order = append(order, id.String())
	}
	h.Wait()

	results := h.Results()
	byID := make(map[string]host.Result, len(results))
	for id, res := range results {
		byID[id.String()] = res
	}

	wins := make([]int, cfg.Players)
	for n, key := range order {
		res := byID[key]
		if res.Err != nil {
			fmt.Fprintf(out, "  game %2d  %s\n", n, st.Bad(res.Err.Error()))
			continue
		}
		wins[res.Result.Winner]++
		fmt.Fprintf(out, "  game %2d  winner seat %d  %3d turns  scores %v\n",
			n, res.Result.Winner, res.Result.Turns, res.Result.Scores)
	}

	st.Section(out, "wins by seat")
	seats := make([]int, cfg.Players)
	for i := range seats {
		seats[i] = i
	}
	sort.SliceStable(seats, func(i, j int) bool { return wins[seats[i]] > wins[seats[j]] })
	for _, seat := range seats {
		fmt.Fprintf(out, "  seat %d  %s\n", seat, st.Good(fmt.Sprintf("%d", wins[seat])))
	}
	mu.Lock()
	fmt.Fprintf(out, "  %s\n", st.Dim(fmt.Sprintf("%d turns observed across %d games", observed, cfg.Games)))
	mu.Unlock()
	return nil
}
