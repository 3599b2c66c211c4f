package contacts

import (
	"regexp"
	"sort"
	"strings"
)

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// cleanupCutset covers punctuation and bracket characters that HTML-to-text
// conversion commonly leaves attached to addresses.
const cleanupCutset = ".,;:()[]{}<>\"'"

// ExtractEmails scans free text for email addresses and returns them
// normalized, de-duplicated, and sorted lexicographically. Case is
// preserved; uniqueness is exact-string after cleanup.
func ExtractEmails(text string) []string {
	matches := emailRe.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		e := strings.Trim(strings.TrimSpace(m), cleanupCutset)
		if e == "" {
			continue
		}
		seen[e] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
