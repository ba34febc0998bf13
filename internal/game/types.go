// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Outcome: result of comparing one guess with the target.
//   - State: playing or won.
//   - Game: state for a single in-progress or finished game.

package game

// Outcome represents the evaluation of a single parsed guess.
// Possible values:
//   - "too_small": guess is below the target.
//   - "too_big":   guess is above the target.
//   - "win":       guess equals the target.
type Outcome string

const (
	OutcomeTooSmall Outcome = "too_small"
	OutcomeTooBig   Outcome = "too_big"
	OutcomeWin      Outcome = "win"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID      string   // Unique game identifier (random hex string).
	target  uint32   // Hidden number; fixed at construction.
	Guesses []uint32 // Parsed guesses applied so far.
	Won     bool
}
