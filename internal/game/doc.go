// Package game implements the logic of a number-guessing game.
//
// The main type is State, which holds the secret, the configured range, the
// latest feedback message and the attempt counter for a single game.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	s := game.New(rng, game.DefaultMaxRange)
//	s.Submit("50")   // OutcomeTooLow, OutcomeTooHigh or OutcomeCorrect
//	fmt.Println(s.Message())
//
// # Deterministic Testing
//
// The random source is required so tests can pin the secret. Any type with
// an IntN(n int) int method works:
//
//	s := game.New(fixedSource(6), 10) // secret is 7
//
// # Lifecycle
//
// A game is either playing or won. Reset always returns to playing. Submit
// moves to won on a correct guess and is a no-op afterwards. Malformed or
// out-of-range input only changes the message; it never counts as an
// attempt.
//
// State is not safe for concurrent use. The UI owns it and mutates it from
// its event loop only.
package game
