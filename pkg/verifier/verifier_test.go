package verifier_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dundeezhang/secret-santa/pkg/santa"
	"github.com/dundeezhang/secret-santa/pkg/verifier"
)

func pairs(lines ...string) []santa.NamePair {
	out := make([]santa.NamePair, len(lines))
	for i, l := range lines {
		giver, receiver, _ := strings.Cut(l, ":")
		out[i] = santa.NamePair{Giver: strings.TrimSpace(giver), Receiver: strings.TrimSpace(receiver)}
	}
	return out
}

func failedNames(r verifier.Report) []string {
	var names []string
	for _, c := range r.Failed() {
		names = append(names, c.Name)
	}
	return names
}

func TestVerify_ValidCycle(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: B", "B: C", "C: A"))
	assert.True(t, report.Valid)
	assert.Equal(t, 3, report.Total)
	require.Len(t, report.Checks, 5)
	for _, c := range report.Checks {
		assert.True(t, c.Passed, c.Name)
		assert.Empty(t, c.Detail, c.Name)
	}
	assert.Empty(t, report.Failed())
}

func TestVerify_CheckOrder(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: B", "B: C", "C: A"))
	names := make([]string, len(report.Checks))
	for i, c := range report.Checks {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		verifier.CheckUniqueGivers,
		verifier.CheckUniqueReceivers,
		verifier.CheckNoSelfGifts,
		verifier.CheckNoMutualPairs,
		verifier.CheckClosure,
	}, names)
}

func TestVerify_MutualPair(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: B", "B: A"))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{verifier.CheckNoMutualPairs}, failedNames(report))

	c, ok := report.Check(verifier.CheckNoMutualPairs)
	require.True(t, ok)
	assert.Contains(t, c.Detail, "A ↔ B")
}

func TestVerify_SelfGift(t *testing.T) {
	t.Parallel()

	t.Run("bijection preserved", func(t *testing.T) {
		t.Parallel()

		report := verifier.Verify(pairs("A: A", "B: C", "C: D", "D: B"))
		assert.False(t, report.Valid)
		assert.Equal(t, []string{verifier.CheckNoSelfGifts}, failedNames(report))

		c, _ := report.Check(verifier.CheckNoSelfGifts)
		assert.Equal(t, "Self-gifting found: A", c.Detail)
	})

	t.Run("receiver rewritten", func(t *testing.T) {
		t.Parallel()

		report := verifier.Verify(pairs("A: B", "B: B", "C: A"))
		assert.False(t, report.Valid)

		self, _ := report.Check(verifier.CheckNoSelfGifts)
		assert.False(t, self.Passed)
		mutual, _ := report.Check(verifier.CheckNoMutualPairs)
		assert.True(t, mutual.Passed)
		givers, _ := report.Check(verifier.CheckUniqueGivers)
		assert.True(t, givers.Passed)
	})
}

func TestVerify_DuplicateGivers(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: B", "A: C", "C: A"))
	assert.False(t, report.Valid)

	c, _ := report.Check(verifier.CheckUniqueGivers)
	assert.False(t, c.Passed)
	assert.Contains(t, c.Detail, "santas more than once")
	assert.Contains(t, c.Detail, "A")
}

func TestVerify_DuplicateReceivers(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: C", "B: C", "C: A"))
	assert.False(t, report.Valid)

	c, _ := report.Check(verifier.CheckUniqueReceivers)
	assert.False(t, c.Passed)
	assert.Contains(t, c.Detail, "receivers more than once: C")

	closure, _ := report.Check(verifier.CheckClosure)
	assert.False(t, closure.Passed)
	assert.Contains(t, closure.Detail, "never receive: B")
}

func TestVerify_ClosureMismatch(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(pairs("A: B", "B: C", "C: D"))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{verifier.CheckClosure}, failedNames(report))

	c, _ := report.Check(verifier.CheckClosure)
	assert.Contains(t, c.Detail, "never receive: A")
	assert.Contains(t, c.Detail, "never give: D")
}

func TestVerify_Empty(t *testing.T) {
	t.Parallel()

	report := verifier.Verify(nil)
	assert.True(t, report.Valid)
	assert.Zero(t, report.Total)
	assert.Len(t, report.Checks, 5)
}

func TestVerify_AcceptsGeneratedMatchings(t *testing.T) {
	t.Parallel()

	participants := make([]santa.Participant, 12)
	for i := range participants {
		participants[i] = santa.Participant{Name: string(rune('A' + i))}
	}

	for seed := uint64(0); seed < 100; seed++ {
		m := santa.NewMatcher(santa.WithRand(rand.New(rand.NewPCG(seed, 1))))
		assignment, err := m.Generate(participants[:3+int(seed%10)])
		require.NoError(t, err)

		report := verifier.Verify(assignment.Names())
		assert.True(t, report.Valid, "seed %d: %v", seed, report.Failed())
	}
}
