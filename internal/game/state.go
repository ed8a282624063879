package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultMaxRange is the upper bound used when the game first starts
	DefaultMaxRange = 100

	// MinMaxRange is the smallest upper bound Reset will accept
	MinMaxRange = 2
)

// Source provides uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// State is the mutable state of one game. It is owned by the UI and is not
// safe for concurrent use.
type State struct {
	src Source

	secret   int
	maxRange int
	input    string
	message  string
	attempts int
	won      bool
}

// New creates a state and starts a game in [1, maxRange].
func New(src Source, maxRange int) *State {
	s := &State{src: src}
	s.Reset(maxRange)
	return s
}

// Reset starts a new game, discarding the previous secret.
func (s *State) Reset(maxRange int) {
	if maxRange < MinMaxRange {
		maxRange = MinMaxRange
	}

	s.maxRange = maxRange
	s.secret = s.src.IntN(maxRange) + 1
	s.input = ""
	s.attempts = 0
	s.won = false
	s.message = fmt.Sprintf("Guess a number between 1 and %d.", maxRange)
}

// SetInput records the raw contents of the guess field.
func (s *State) SetInput(text string) {
	s.input = text
}

// Submit classifies raw as a guess and updates the message. It does nothing
// once the game is won.
func (s *State) Submit(raw string) Outcome {
	if s.won {
		return OutcomeIgnored
	}

	guess, ok := parseGuess(raw)
	if !ok {
		s.message = "Please enter a valid whole number."
		return OutcomeInvalid
	}
	if guess < 1 || guess > uint64(s.maxRange) {
		s.message = fmt.Sprintf("Please enter a number between 1 and %d.", s.maxRange)
		return OutcomeOutOfRange
	}

	s.attempts++

	switch {
	case int(guess) == s.secret:
		s.won = true
		s.message = fmt.Sprintf("Correct! You guessed it in %d tries.", s.attempts)
		return OutcomeCorrect
	case int(guess) > s.secret:
		s.message = "Too high! Try lower."
		return OutcomeTooHigh
	default:
		s.message = "Too low! Try higher."
		return OutcomeTooLow
	}
}

// parseGuess accepts only a run of ASCII digits that fits in 32 bits.
// ParseUint already rejects signs, and underscores are only allowed with base 0.
func parseGuess(raw string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Secret returns the current secret.
func (s *State) Secret() int { return s.secret }

// Revealed returns the secret once the game is won.
func (s *State) Revealed() (int, bool) {
	if !s.won {
		return 0, false
	}
	return s.secret, true
}

// MaxRange returns the current upper bound.
func (s *State) MaxRange() int { return s.maxRange }

// Input returns the raw guess text last recorded with SetInput.
func (s *State) Input() string { return s.input }

// Message returns the feedback to show the player. It is never empty.
func (s *State) Message() string { return s.message }

// Attempts returns the number of accepted guesses since the last reset.
func (s *State) Attempts() int { return s.attempts }

// Won reports whether the last accepted guess matched the secret.
func (s *State) Won() bool { return s.won }
