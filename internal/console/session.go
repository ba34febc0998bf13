// internal/console/session.go
//
// Line-oriented driver for one guessing game.
// Responsibilities:
//   - Prompt, read one line per attempt, hand it to the game engine.
//   - Echo parsed guesses and print the outcome.
//   - Silently re-prompt on unparseable lines.
//   - Stop once the game is won.
//
// Output text comes from the English message catalog in messages.go.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/guessing-game/internal/game"
)

// ErrInputClosed is returned by Run when input ends before the game is won.
var ErrInputClosed = errors.New("input closed before win")

// Session binds a game to a text source and sink.
type Session struct {
	in  *bufio.Reader
	out io.Writer
	p   *message.Printer
	g   *game.Game
	log zerolog.Logger
}

// New constructs a Session reading guesses from in and writing to out.
func New(in io.Reader, out io.Writer, g *game.Game, logger zerolog.Logger) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
		p:   message.NewPrinter(language.English),
		g:   g,
		log: logger.With().Str("gameId", g.ID).Logger(),
	}
}

// Run plays the game to completion. It returns nil once the game is won,
// ErrInputClosed if input ends first, or a wrapped read/write error.
func (s *Session) Run() error {
	s.log.Info().Msg("game started")
	if err := s.say(msgBanner); err != nil {
		return err
	}

	for s.g.State() == game.StatePlaying {
		if err := s.say(msgPrompt); err != nil {
			return err
		}

		line, err := s.readLine()
		if err != nil {
			return err
		}

		n, out, _, err := s.g.ApplyGuess(line)
		if errors.Is(err, game.ErrUnparseable) {
			s.log.Debug().Msg("discarded unparseable guess")
			continue
		}
		if err != nil {
			return err
		}

		if err := s.say(msgEcho, strconv.FormatUint(uint64(n), 10)); err != nil {
			return err
		}
		if err := s.say(outcomeKey(out)); err != nil {
			return err
		}
	}

	s.log.Info().Int("attempts", s.g.Attempts()).Msg("game won")
	return nil
}

// readLine returns the next line, including a final unterminated one.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if line != "" {
			return line, nil
		}
		return "", fmt.Errorf("read guess: %w", ErrInputClosed)
	default:
		return "", fmt.Errorf("read guess: %w", err)
	}
}

func (s *Session) say(key string, args ...any) error {
	if _, err := io.WriteString(s.out, s.p.Sprintf(key, args...)+"\n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func outcomeKey(o game.Outcome) string {
	switch o {
	case game.OutcomeTooSmall:
		return msgTooSmall
	case game.OutcomeTooBig:
		return msgTooBig
	default:
		return msgWin
	}
}
