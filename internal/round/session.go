package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/huntgrid/internal/game"
	"github.com/ugaemi/huntgrid/internal/geom"
	"github.com/ugaemi/huntgrid/internal/grid"
)

var (
	ErrNotPlaying = errors.New("round: not playing")
	ErrTickLimit  = errors.New("round: tick limit reached")
)

// Options configures a Session.
type Options struct {
	Settings game.Settings
	Seed     int64

	// TickInterval paces Run. Zero or less runs ticks back to back.
	TickInterval time.Duration
	// MaxTicks pauses the round and stops Run after that many ticks since
	// the last Resume. Zero means no limit.
	MaxTicks int
	// Autopilot steers the runner toward the goal before every tick.
	Autopilot bool
}

// Session owns one arena and plays rounds on it, one at a time. All methods
// are safe for concurrent use.
type Session struct {
	ID uuid.UUID

	// OnTick and OnRoundEnd are called after the lock is released. Set them
	// before calling Run.
	OnTick     func(Snapshot)
	OnRoundEnd func(Snapshot)

	opts Options
	rng  *rand.Rand

	sim     *game.Simulation
	roundID uuid.UUID
	state   game.RoundState
	tick    int
	// resumedAt is the tick play last resumed from. MaxTicks counts from it.
	resumedAt int

	mu sync.Mutex
}

// NewSession creates a session and sets up its first round, paused.
func NewSession(opts Options) (*Session, error) {
	s := &Session{
		ID:   uuid.New(),
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	if err := s.StartNewRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// StartNewRound discards the current round and generates a new one on a
// fresh arena. The new round waits in the paused state. On error the current
// round is left as it was.
func (s *Session) StartNewRound() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startNewRound()
}

// startNewRound must be called with s.mu held.
func (s *Session) startNewRound() error {
	st := s.opts.Settings
	w, err := grid.New(st.Cols, st.Rows, st.Width, st.Height)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}
	sim, err := game.NewRound(w, st, s.rng)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}

	s.sim = sim
	s.roundID = uuid.New()
	s.state = game.StatePaused
	s.tick = 0
	s.resumedAt = 0

	slog.Info("round started",
		"session", s.ID,
		"round", s.roundID,
		"goal", sim.Goal,
		"runner", sim.RunnerCell(),
		"obstacles", len(sim.Obstacles),
	)
	return nil
}

// Resume starts play. A finished round is replaced by a new one first.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case game.StatePlaying:
		return nil
	case game.StateWon, game.StateLost:
		if err := s.startNewRound(); err != nil {
			return err
		}
	}
	s.state = game.StatePlaying
	s.resumedAt = s.tick
	slog.Debug("round resumed", "round", s.roundID, "tick", s.tick)
	return nil
}

// Pause suspends a round in play. It does nothing in any other state.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != game.StatePlaying {
		return
	}
	s.state = game.StatePaused
	slog.Debug("round paused", "round", s.roundID, "tick", s.tick)
}

// SetRunnerDestination points the runner at c. It is rejected unless the
// round is in play and c is a walkable cell of the arena.
func (s *Session) SetRunnerDestination(c geom.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != game.StatePlaying {
		slog.Debug("destination rejected", "round", s.roundID, "cell", c, "state", s.state)
		return ErrNotPlaying
	}
	if err := s.sim.SetRunnerDestination(c); err != nil {
		slog.Debug("destination rejected", "round", s.roundID, "cell", c, "error", err)
		return err
	}
	return nil
}

// SteerRunnerToGoal points the runner at the next waypoint of the cheapest
// path to the goal. It reports false outside of play or when there is no
// such waypoint.
func (s *Session) SteerRunnerToGoal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != game.StatePlaying {
		return false
	}
	return s.steer()
}

// steer must be called with s.mu held.
func (s *Session) steer() bool {
	wp, ok := s.sim.NextRunnerWaypoint()
	if !ok {
		return false
	}
	return s.sim.SetRunnerDestination(wp) == nil
}

// Tick advances a round in play by one step and returns the resulting state.
// Outside of play it changes nothing.
func (s *Session) Tick() game.RoundState {
	s.mu.Lock()

	if s.state != game.StatePlaying {
		state := s.state
		s.mu.Unlock()
		return state
	}

	s.tick++
	if s.opts.Autopilot {
		s.steer()
	}
	outcome := s.sim.Step()
	s.state = outcome.State()
	state := s.state
	ended := state.Finished()

	if ended {
		slog.Info("round ended",
			"session", s.ID,
			"round", s.roundID,
			"tick", s.tick,
			"state", state,
		)
	}

	var snap Snapshot
	if s.OnTick != nil || (ended && s.OnRoundEnd != nil) {
		snap = s.snapshot()
	}
	s.mu.Unlock()

	if s.OnTick != nil {
		s.OnTick(snap)
	}
	if ended && s.OnRoundEnd != nil {
		s.OnRoundEnd(snap)
	}
	return state
}

// Run ticks the session until the round is decided or ctx is done. With a
// positive TickInterval it waits on a ticker between ticks, so a paused round
// sits idle until resumed. Without one a paused round ends Run with
// ErrNotPlaying. Run returns ErrTickLimit, after pausing the round, once
// MaxTicks ticks have been played since the last Resume.
func (s *Session) Run(ctx context.Context) error {
	if s.opts.TickInterval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.State() != game.StatePlaying {
				return ErrNotPlaying
			}
			if done, err := s.runTick(); done {
				return err
			}
		}
	}

	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if done, err := s.runTick(); done {
				return err
			}
		}
	}
}

// runTick plays one tick for Run and reports whether Run should stop.
func (s *Session) runTick() (bool, error) {
	if s.Tick().Finished() {
		return true, nil
	}
	if s.opts.MaxTicks > 0 && s.ticksSinceResume() >= s.opts.MaxTicks {
		s.Pause()
		slog.Info("round hit tick limit", "session", s.ID, "round", s.RoundID(), "tick", s.Ticks())
		return true, ErrTickLimit
	}
	return false, nil
}

func (s *Session) ticksSinceResume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick - s.resumedAt
}

// State returns the current round state.
func (s *Session) State() game.RoundState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks returns the number of ticks played in the current round.
func (s *Session) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// RoundID returns the id of the current round.
func (s *Session) RoundID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundID
}

// Snapshot returns a copy of everything a view needs to draw the round.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}
