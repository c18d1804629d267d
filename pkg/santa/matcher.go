package santa

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

const (
	// MinParticipants is the smallest roster for which a matching without
	// mutual pairs exists.
	MinParticipants = 3

	// DefaultMaxAttempts bounds the rejection sampling loop.
	DefaultMaxAttempts = 1000
)

// Option configures a Matcher.
type Option func(*Matcher)

// WithRand sets the randomness source. Nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(m *Matcher) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithMaxAttempts overrides the attempt budget. Non-positive values are ignored.
func WithMaxAttempts(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// Matcher draws random matchings. A Matcher is not safe for concurrent use
// because it owns its random source.
type Matcher struct {
	rng         *rand.Rand
	maxAttempts int
	attempts    int
}

// NewMatcher returns a Matcher seeded from crypto/rand unless WithRand is given.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewChaCha8(newSeed()))
	}
	return m
}

// GenerateMatching draws a matching with a freshly seeded Matcher.
func GenerateMatching(participants []Participant) (Assignment, error) {
	return NewMatcher().Generate(participants)
}

// Generate returns a valid assignment for participants, in roster order.
// The input slice is not modified.
func (m *Matcher) Generate(participants []Participant) (Assignment, error) {
	m.attempts = 0
	if len(participants) < MinParticipants {
		return nil, ErrTooFewParticipants
	}

	givers := make([]string, len(participants))
	for i, p := range participants {
		givers[i] = p.Name
	}

	order := make([]int, len(participants))
	receivers := make([]string, len(participants))

	for m.attempts < m.maxAttempts {
		m.attempts++

		for i := range order {
			order[i] = i
		}
		Shuffle(m.rng, order)
		for i, j := range order {
			receivers[i] = givers[j]
		}

		if !IsValidMatching(givers, receivers) {
			continue
		}

		assignment := make(Assignment, len(participants))
		for i, j := range order {
			assignment[i] = Pairing{Giver: participants[i], Receiver: participants[j]}
		}
		return assignment, nil
	}

	return nil, ErrExhaustedAttempts
}

// Attempts reports how many draws the last Generate call made.
func (m *Matcher) Attempts() int {
	return m.attempts
}

// Shuffle permutes s in place with an unbiased Fisher-Yates pass.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// IsValidMatching reports whether the parallel slices pair nobody with
// themselves and contain no mutual pair. Slices of unequal length are invalid.
func IsValidMatching(givers, receivers []string) bool {
	if len(givers) != len(receivers) {
		return false
	}
	for i := range givers {
		if givers[i] == receivers[i] {
			return false
		}
		for j := range givers {
			if i != j && givers[j] == receivers[i] && receivers[j] == givers[i] {
				return false
			}
		}
	}
	return true
}

func newSeed() [32]byte {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// Unreachable on supported platforms.
		binary.LittleEndian.PutUint64(seed[:], rand.Uint64())
	}
	return seed
}
