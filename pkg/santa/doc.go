// Package santa assigns Secret Santa givers to receivers.
//
// A matching is a permutation of the participants with no fixed points
// (nobody gives to themselves) and no 2-cycles (no two participants give
// to each other). It is produced by rejection sampling: shuffle the
// participants, pair them by position with the original order, and retry
// until the constraints hold or the attempt budget is spent.
//
// # Usage
//
//	participants := []santa.Participant{
//	    {Name: "Alice", Email: "alice@example.com"},
//	    {Name: "Bob", Email: "bob@example.com"},
//	    {Name: "Carol", Email: "carol@example.com"},
//	}
//
//	assignment, err := santa.GenerateMatching(participants)
//	if errors.Is(err, santa.ErrTooFewParticipants) {
//	    // need at least three people
//	}
//
// Deterministic runs (tests, reproducible draws) inject their own source:
//
//	m := santa.NewMatcher(santa.WithRand(rand.New(rand.NewPCG(1, 2))))
//	assignment, err := m.Generate(participants)
//
// # Error Handling
//
//   - ErrTooFewParticipants: fewer than MinParticipants were supplied
//   - ErrExhaustedAttempts: no valid matching within the attempt budget
//
// Neither error carries a partial result.
package santa
