package contacts

import "strings"

// personalConfidenceFloor is the confidence below which personal-looking
// addresses are suppressed in favor of role-based or generic inboxes.
const personalConfidenceFloor = 0.8

// PickTop walks the ranked candidate list and accepts at most maxN
// candidates, skipping addresses whose mailbox name looks personal
// (firstname.lastname style) unless confidence is high.
func PickTop(ranked []Candidate, maxN int) []Candidate {
	var picked []Candidate
	for _, c := range ranked {
		local, _, _ := strings.Cut(c.Email, "@")
		looksPersonal := strings.ContainsAny(local, "._")
		if looksPersonal && c.Confidence < personalConfidenceFloor {
			continue
		}
		picked = append(picked, c)
		if len(picked) >= maxN {
			break
		}
	}
	return picked
}
