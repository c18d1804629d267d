package santa_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dundeezhang/secret-santa/pkg/santa"
)

func roster(names ...string) []santa.Participant {
	ps := make([]santa.Participant, len(names))
	for i, n := range names {
		ps[i] = santa.Participant{Name: n, Email: fmt.Sprintf("%s@example.com", n)}
	}
	return ps
}

func seeded(seed uint64) santa.Option {
	return santa.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestGenerateMatching_TooFewParticipants(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2} {
		t.Run(fmt.Sprintf("%d participants", n), func(t *testing.T) {
			t.Parallel()

			names := []string{"A", "B"}[:n]
			assignment, err := santa.GenerateMatching(roster(names...))
			assert.ErrorIs(t, err, santa.ErrTooFewParticipants)
			assert.Nil(t, assignment)
		})
	}
}

func TestGenerateMatching_ThreeParticipants(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{
		"A>B,B>C,C>A": true,
		"A>C,B>A,C>B": true,
	}

	for seed := uint64(0); seed < 200; seed++ {
		m := santa.NewMatcher(seeded(seed))
		assignment, err := m.Generate(roster("A", "B", "C"))
		require.NoError(t, err)

		key := ""
		for i, p := range assignment.Names() {
			if i > 0 {
				key += ","
			}
			key += p.Giver + ">" + p.Receiver
		}
		assert.True(t, valid[key], "unexpected matching %s", key)
	}
}

func TestGenerateMatching_Properties(t *testing.T) {
	t.Parallel()

	sizes := []int{3, 4, 5, 8, 13, 40}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("n=%d", size), func(t *testing.T) {
			t.Parallel()

			names := make([]string, size)
			for i := range names {
				names[i] = fmt.Sprintf("p%02d", i)
			}
			participants := roster(names...)

			for seed := uint64(0); seed < 50; seed++ {
				assignment, err := santa.NewMatcher(seeded(seed)).Generate(participants)
				require.NoError(t, err)
				require.Len(t, assignment, size)

				givers := map[string]bool{}
				receivers := map[string]bool{}
				next := map[string]string{}
				for i, p := range assignment {
					assert.Equal(t, participants[i], p.Giver, "givers keep roster order")
					assert.NotEqual(t, p.Giver.Name, p.Receiver.Name)
					assert.False(t, givers[p.Giver.Name], "duplicate giver %s", p.Giver.Name)
					assert.False(t, receivers[p.Receiver.Name], "duplicate receiver %s", p.Receiver.Name)
					givers[p.Giver.Name] = true
					receivers[p.Receiver.Name] = true
					next[p.Giver.Name] = p.Receiver.Name
				}
				assert.Len(t, givers, size)
				assert.Len(t, receivers, size)
				for g, r := range next {
					assert.NotEqual(t, g, next[r], "mutual pair %s <-> %s", g, r)
				}
			}
		})
	}
}

func TestGenerateMatching_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	participants := roster("A", "B", "C", "D", "E")
	original := append([]santa.Participant(nil), participants...)

	_, err := santa.NewMatcher(seeded(7)).Generate(participants)
	require.NoError(t, err)
	assert.Equal(t, original, participants)
}

func TestGenerateMatching_Deterministic(t *testing.T) {
	t.Parallel()

	participants := roster("A", "B", "C", "D", "E", "F")
	first, err := santa.NewMatcher(seeded(42)).Generate(participants)
	require.NoError(t, err)
	second, err := santa.NewMatcher(seeded(42)).Generate(participants)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatcher_ExhaustedAttempts(t *testing.T) {
	t.Parallel()

	// Duplicate names make every draw contain a self-pair or mutual pair.
	participants := roster("A", "A", "A")
	m := santa.NewMatcher(seeded(1), santa.WithMaxAttempts(25))

	assignment, err := m.Generate(participants)
	assert.ErrorIs(t, err, santa.ErrExhaustedAttempts)
	assert.Nil(t, assignment)
	assert.Equal(t, 25, m.Attempts())
}

func TestMatcher_AttemptsWithinBudget(t *testing.T) {
	t.Parallel()

	m := santa.NewMatcher(seeded(3))
	_, err := m.Generate(roster("A", "B", "C", "D"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Attempts(), 1)
	assert.LessOrEqual(t, m.Attempts(), santa.DefaultMaxAttempts)
}

func TestWithMaxAttempts_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	m := santa.NewMatcher(seeded(1), santa.WithMaxAttempts(0), santa.WithMaxAttempts(-3))
	_, err := m.Generate(roster("A", "A", "A"))
	assert.ErrorIs(t, err, santa.ErrExhaustedAttempts)
	assert.Equal(t, santa.DefaultMaxAttempts, m.Attempts())
}

func TestIsValidMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		givers    []string
		receivers []string
		want      bool
	}{
		{name: "three cycle", givers: []string{"A", "B", "C"}, receivers: []string{"B", "C", "A"}, want: true},
		{name: "reverse three cycle", givers: []string{"A", "B", "C"}, receivers: []string{"C", "A", "B"}, want: true},
		{name: "four cycle", givers: []string{"A", "B", "C", "D"}, receivers: []string{"B", "C", "D", "A"}, want: true},
		{name: "self pair", givers: []string{"A", "B", "C"}, receivers: []string{"A", "C", "B"}, want: false},
		{name: "mutual pair", givers: []string{"A", "B", "C", "D"}, receivers: []string{"B", "A", "D", "C"}, want: false},
		{name: "mutual pair with cycle", givers: []string{"A", "B", "C", "D", "E"}, receivers: []string{"B", "A", "D", "E", "C"}, want: false},
		{name: "unequal length", givers: []string{"A", "B", "C"}, receivers: []string{"B", "C"}, want: false},
		{name: "empty", givers: nil, receivers: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, santa.IsValidMatching(tt.givers, tt.receivers))
		})
	}
}

func TestShuffle_Uniform(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 13))
	counts := map[string]int{}
	const draws = 60000
	for range draws {
		s := []string{"A", "B", "C"}
		santa.Shuffle(rng, s)
		counts[s[0]+s[1]+s[2]]++
	}

	require.Len(t, counts, 6)
	expected := draws / 6
	for perm, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.05, "permutation %s", perm)
	}
}

func TestAssignment_Names(t *testing.T) {
	t.Parallel()

	ps := roster("A", "B", "C")
	a := santa.Assignment{
		{Giver: ps[0], Receiver: ps[1]},
		{Giver: ps[1], Receiver: ps[2]},
		{Giver: ps[2], Receiver: ps[0]},
	}

	assert.Equal(t, []santa.NamePair{
		{Giver: "A", Receiver: "B"},
		{Giver: "B", Receiver: "C"},
		{Giver: "C", Receiver: "A"},
	}, a.Names())
}
