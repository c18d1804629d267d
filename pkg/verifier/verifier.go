// Package verifier audits a persisted Secret Santa assignment.
//
// Verify re-derives every matching invariant from raw name pairs, so it can
// check output regardless of how it was produced, including hand-edited files.
// It never fails: degenerate input yields a report, and an empty assignment is
// vacuously valid.
package verifier

import (
	"fmt"
	"strings"

	"github.com/dundeezhang/secret-santa/pkg/santa"
)

// Check names in report order.
const (
	CheckUniqueGivers    = "unique_givers"
	CheckUniqueReceivers = "unique_receivers"
	CheckNoSelfGifts     = "no_self_gifts"
	CheckNoMutualPairs   = "no_mutual_pairs"
	CheckClosure         = "givers_equal_receivers"
)

// Check is the outcome of a single invariant.
type Check struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	Detail      string `json:"detail,omitempty"`
}

// Report is the verdict over all checks.
type Report struct {
	Valid  bool    `json:"valid"`
	Total  int     `json:"total"`
	Checks []Check `json:"checks"`
}

// Failed returns the checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// Check returns the named check.
func (r Report) Check(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Verify runs all checks over pairings.
func Verify(pairings []santa.NamePair) Report {
	givers := make([]string, len(pairings))
	receivers := make([]string, len(pairings))
	for i, p := range pairings {
		givers[i] = p.Giver
		receivers[i] = p.Receiver
	}

	checks := []Check{
		uniqueCheck(CheckUniqueGivers, "Each person is a santa exactly once", "Some people are santas more than once", givers),
		uniqueCheck(CheckUniqueReceivers, "Each person is a receiver exactly once", "Some people are receivers more than once", receivers),
		selfGiftCheck(pairings),
		mutualPairCheck(pairings),
		closureCheck(givers, receivers),
	}

	valid := true
	for _, c := range checks {
		valid = valid && c.Passed
	}

	return Report{Valid: valid, Total: len(pairings), Checks: checks}
}

func uniqueCheck(name, description, failure string, names []string) Check {
	c := Check{Name: name, Description: description, Passed: true}
	seen := make(map[string]int, len(names))
	var dups []string
	for _, n := range names {
		seen[n]++
		if seen[n] == 2 {
			dups = append(dups, n)
		}
	}
	if len(dups) > 0 {
		c.Passed = false
		c.Detail = fmt.Sprintf("%s: %s", failure, strings.Join(dups, ", "))
	}
	return c
}

func selfGiftCheck(pairings []santa.NamePair) Check {
	c := Check{Name: CheckNoSelfGifts, Description: "No one gives to themselves", Passed: true}
	var selfs []string
	for _, p := range pairings {
		if p.Giver == p.Receiver {
			selfs = append(selfs, p.Giver)
		}
	}
	if len(selfs) > 0 {
		c.Passed = false
		c.Detail = "Self-gifting found: " + strings.Join(selfs, ", ")
	}
	return c
}

func mutualPairCheck(pairings []santa.NamePair) Check {
	c := Check{Name: CheckNoMutualPairs, Description: "No mutual gift exchanges", Passed: true}
	var mutual []string
	for i := range pairings {
		for j := i + 1; j < len(pairings); j++ {
			p1, p2 := pairings[i], pairings[j]
			if p1.Giver == p2.Receiver && p1.Receiver == p2.Giver {
				mutual = append(mutual, fmt.Sprintf("%s ↔ %s", p1.Giver, p1.Receiver))
			}
		}
	}
	if len(mutual) > 0 {
		c.Passed = false
		c.Detail = "Mutual exchanges found: " + strings.Join(mutual, ", ")
	}
	return c
}

func closureCheck(givers, receivers []string) Check {
	c := Check{Name: CheckClosure, Description: "All participants give and receive", Passed: true}
	giverSet := toSet(givers)
	receiverSet := toSet(receivers)

	var onlyGive, onlyReceive []string
	for _, g := range givers {
		if _, ok := receiverSet[g]; !ok {
			onlyGive = append(onlyGive, g)
			receiverSet[g] = struct{}{} // report once
		}
	}
	for _, r := range receivers {
		if _, ok := giverSet[r]; !ok {
			onlyReceive = append(onlyReceive, r)
			giverSet[r] = struct{}{}
		}
	}

	if len(onlyGive) > 0 || len(onlyReceive) > 0 {
		c.Passed = false
		parts := []string{"Mismatch between givers and receivers"}
		if len(onlyGive) > 0 {
			parts = append(parts, "never receive: "+strings.Join(onlyGive, ", "))
		}
		if len(onlyReceive) > 0 {
			parts = append(parts, "never give: "+strings.Join(onlyReceive, ", "))
		}
		c.Detail = strings.Join(parts, "; ")
	}
	return c
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
