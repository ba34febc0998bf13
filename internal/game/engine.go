// internal/game/engine.go
//
// Core engine for a single guessing session.
// Responsibilities:
//   - Create new games with a fixed or randomly drawn target.
//   - Parse raw input lines into unsigned guesses.
//   - Compare guesses against the target and track playing → won.
//
// Notes:
//   - Target selection lives in the secret package.
//   - Unparseable input is reported as ErrUnparseable and leaves the game untouched.
package game

import (
	"cmp"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/robalobadob/guessing-game/internal/secret"
)

var (
	ErrUnparseable = errors.New("unparseable guess")
	ErrFinished    = errors.New("game finished")
)

// New constructs a game around a known target.
func New(target uint32) *Game {
	return &Game{
		ID:      randomID(),
		target:  target,
		Guesses: []uint32{},
	}
}

// NewRandom constructs a game whose target is drawn from src over secret.Min..=secret.Max.
func NewRandom(src secret.Source) (*Game, error) {
	t, err := secret.Pick(src)
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

// ParseGuess trims surrounding whitespace and parses an unsigned 32-bit
// decimal. A single leading '+' is accepted.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrUnparseable
	}
	return uint32(n), nil
}

// Compare maps the ordering of guess against target to an Outcome.
func Compare(guess, target uint32) Outcome {
	switch cmp.Compare(guess, target) {
	case -1:
		return OutcomeTooSmall
	case 1:
		return OutcomeTooBig
	default:
		return OutcomeWin
	}
}

// ApplyGuess parses line and, if it is a number, scores it and updates state.
// Returns: the parsed guess, the outcome, the new state, or an error.
//
// ErrUnparseable leaves the game untouched. ErrFinished is returned once the
// game has been won.
func (g *Game) ApplyGuess(line string) (uint32, Outcome, State, error) {
	if g.Won {
		return 0, "", g.State(), ErrFinished
	}
	n, err := ParseGuess(line)
	if err != nil {
		return 0, "", g.State(), err
	}

	out := Compare(n, g.target)
	g.Guesses = append(g.Guesses, n)
	if out == OutcomeWin {
		g.Won = true
	}
	return n, out, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Won {
		return StateWon
	}
	return StatePlaying
}

// Attempts is the number of parsed guesses applied so far.
func (g *Game) Attempts() int { return len(g.Guesses) }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
