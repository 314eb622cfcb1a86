package game

import "encoding/json"

// RoundState is the lifecycle state of a round as seen by the outer loop.
type RoundState int

const (
	StatePaused RoundState = iota
	StatePlaying
	StateWon
	StateLost
)

func (s RoundState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes RoundState as a string.
func (s RoundState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Finished reports whether the round has been decided.
func (s RoundState) Finished() bool {
	return s == StateWon || s == StateLost
}

// Outcome is the result of one simulation step.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEscaped
	OutcomeCaught
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomeCaught:
		return "caught"
	default:
		return "none"
	}
}

// State returns the round state an outcome leads to.
func (o Outcome) State() RoundState {
	switch o {
	case OutcomeEscaped:
		return StateWon
	case OutcomeCaught:
		return StateLost
	default:
		return StatePlaying
	}
}
