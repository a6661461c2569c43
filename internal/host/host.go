// Package host runs many independent Scout simulations concurrently,
// one goroutine per game, keyed by UUID.
package host

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dannunan/scout-game/engine"
)

// GameSpec describes one simulation to launch.
type GameSpec struct {
	Players    int
	Seed       uint64
	Rules      engine.Rules
	Strategies []engine.Strategy
}

// Event is a turn event tagged with the game it came from.
type Event struct {
	GameID uuid.UUID
	Turn   engine.TurnEvent
}

// Result is the outcome of one finished game. Exactly one of Result and
// Err is set; a Quit surfaces as an *engine.HaltError in Err.
type Result struct {
	GameID uuid.UUID
	Result *engine.GameResult
	Err    error
}

// Host is a registry of running games. Games share nothing; the
// registry map is the only guarded state.
type Host struct {
	log *logrus.Logger
	wg  sync.WaitGroup

	mu         sync.Mutex
	results    map[uuid.UUID]Result
	subscriber func(Event)
}

// New returns an empty Host logging through logger. A nil logger gets a
// default logrus logger at warn level.
func New(logger *logrus.Logger) *Host {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Host{
		log:     logger,
		results: make(map[uuid.UUID]Result),
	}
}

// Subscribe registers the event fan-out callback. Events from all games
// are delivered through it, on each game's own goroutine.
func (h *Host) Subscribe(fn func(Event)) {
	h.mu.Lock()
	h.subscriber = fn
	h.mu.Unlock()
}

// Launch deals a game from the spec and runs it on its own goroutine,
// returning its ID immediately.
func (h *Host) Launch(spec GameSpec) (uuid.UUID, error) {
	if len(spec.Strategies) != spec.Players {
		return uuid.Nil, fmt.Errorf("%d strategies for %d players", len(spec.Strategies), spec.Players)
	}
	g, err := engine.NewGame(spec.Players, spec.Seed, spec.Rules)
	if err != nil {
		return uuid.Nil, err
	}
	g.Deal()

	id := uuid.New()
	h.log.WithFields(logrus.Fields{
		"game_id": id,
		"players": spec.Players,
		"seed":    spec.Seed,
	}).Info("game launched")

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		res, err := engine.Watch(g, spec.Strategies, func(ev engine.TurnEvent) {
			h.mu.Lock()
			fn := h.subscriber
			h.mu.Unlock()
			if fn != nil {
				fn(Event{GameID: id, Turn: ev})
			}
		})
		if err != nil {
			h.log.WithField("game_id", id).WithError(err).Error("game aborted")
		} else {
			h.log.WithFields(logrus.Fields{
				"game_id": id,
				"winner":  res.Winner,
				"turns":   res.Turns,
			}).Info("game finished")
		}
		h.mu.Lock()
		h.results[id] = Result{GameID: id, Result: res, Err: err}
		h.mu.Unlock()
	}()
	return id, nil
}

// Wait blocks until every launched game has finished.
func (h *Host) Wait() {
	h.wg.Wait()
}

// Results returns a copy of the finished-game outcomes keyed by game ID.
func (h *Host) Results() map[uuid.UUID]Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[uuid.UUID]Result, len(h.results))
	for id, r := range h.results {
		out[id] = r
	}
	return out
}
