package game

// fixedSource always draws the same value, so the secret is value+1.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// TestStateOption configures test state creation
type TestStateOption func(*testStateBuilder)

type testStateBuilder struct {
	secret   int
	maxRange int
}

// WithSecret pins the secret for every reset
func WithSecret(secret int) TestStateOption {
	return func(b *testStateBuilder) { b.secret = secret }
}

func WithMaxRange(maxRange int) TestStateOption {
	return func(b *testStateBuilder) { b.maxRange = maxRange }
}

// NewTestState creates a state for testing with sensible defaults
func NewTestState(opts ...TestStateOption) *State {
	builder := &testStateBuilder{
		secret:   1,
		maxRange: DefaultMaxRange,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return New(fixedSource(builder.secret-1), builder.maxRange)
}
