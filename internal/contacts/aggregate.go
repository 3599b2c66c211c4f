package contacts

import (
	"sort"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// roleWeight orders roles for ranking: organizationally relevant roles
// first, generic inboxes next, unknown last.
var roleWeight = map[model.Role]int{
	model.RoleCSR:         3,
	model.RolePartnership: 3,
	model.RoleMarketing:   2,
	model.RoleGeneric:     1,
	model.RoleUnknown:     0,
}

// Candidate is one discovered email with its classification, before it is
// persisted as a contact.
type Candidate struct {
	Email      string
	FoundOn    string
	RoleGuess  model.Role
	Confidence float64
}

// FromPages extracts and classifies emails across all pages fetched for one
// company and returns a ranked candidate list. When the same email appears
// on multiple pages, only the highest-confidence occurrence survives (ties
// keep the first seen). Ranking is descending by (confidence, role weight).
func (c Classifier) FromPages(pages []model.Page) []Candidate {
	best := make(map[string]Candidate)
	var order []string

	for _, p := range pages {
		for _, email := range ExtractEmails(p.Text) {
			role, conf := c.GuessRole(email, p.URL, p.Text)
			prev, ok := best[email]
			if !ok {
				order = append(order, email)
			}
			if !ok || conf > prev.Confidence {
				best[email] = Candidate{
					Email:      email,
					FoundOn:    p.URL,
					RoleGuess:  role,
					Confidence: conf,
				}
			}
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, email := range order {
		out = append(out, best[email])
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return roleWeight[out[i].RoleGuess] > roleWeight[out[j].RoleGuess]
	})
	return out
}
