package contacts

import (
	"strings"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// rolePriority fixes the order roles are tested in. First match wins, so
// the order encodes the tie-break policy between overlapping keyword sets.
var rolePriority = []model.Role{model.RoleCSR, model.RolePartnership, model.RoleMarketing}

var roleKeywords = map[model.Role][]string{
	model.RoleCSR:         {"csr", "sustainab", "esg", "community", "impact", "foundation", "responsibility"},
	model.RolePartnership: {"partner", "partnership", "alliances", "collab", "sponsor", "sponsorship"},
	model.RoleMarketing:   {"marketing", "brand", "communications", "comms", "pr", "media"},
}

var genericInboxHints = []string{"info@", "contact@", "hello@", "support@", "enquiry@", "inquiry@"}

// sponsorshipVocab boosts confidence when the page itself talks about
// sponsorship, partnership, or CSR/ESG topics.
var sponsorshipVocab = []string{"sponsor", "sponsorship", "partnership", "collaborat", "csr", "esg", "foundation"}

// Classifier guesses a functional role and confidence for one discovered
// email.
type Classifier struct {
	// LocalPartOnly restricts role keyword matching on the email to the
	// mailbox name. The historical behavior matches against the full
	// address including the domain, which misclassifies every mailbox at
	// a domain containing a keyword (e.g. "media"); the full-string match
	// remains the default for compatibility.
	LocalPartOnly bool
}

// GuessRole classifies an email found at contextURL on a page with the
// given text. The returned confidence accumulates 0.6 for a role keyword
// hit, 0.2 for a generic-inbox mailbox, and 0.2 for sponsorship vocabulary
// on the page, clamped to 1.0.
func (c Classifier) GuessRole(email, contextURL, pageText string) (model.Role, float64) {
	e := strings.ToLower(email)
	url := strings.ToLower(contextURL)
	text := strings.ToLower(pageText)

	matchTarget := e
	if c.LocalPartOnly {
		matchTarget, _, _ = strings.Cut(e, "@")
	}

	score := 0.0
	role := model.RoleUnknown

	for _, r := range rolePriority {
		if containsAny(matchTarget, roleKeywords[r]) || containsAny(url, roleKeywords[r]) {
			role = r
			score += 0.6
			break
		}
	}

	if containsAny(e, genericInboxHints) {
		score += 0.2
		if role == model.RoleUnknown {
			role = model.RoleGeneric
		}
	}

	if containsAny(text, sponsorshipVocab) {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return role, score
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
