package game

// Outcome classifies the result of a Submit call
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeInvalid
	OutcomeOutOfRange
	OutcomeTooLow
	OutcomeTooHigh
	OutcomeCorrect
)

func (o Outcome) String() string {
	return [...]string{"ignored", "invalid", "out-of-range", "too-low", "too-high", "correct"}[o]
}

// Accepted reports whether the guess counted as an attempt
func (o Outcome) Accepted() bool {
	return o == OutcomeTooLow || o == OutcomeTooHigh || o == OutcomeCorrect
}
