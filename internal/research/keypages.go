package research

import (
	"net/url"
	"strings"
)

// keyPagePaths lists the site sections most likely to carry CSR,
// partnership, and contact information, in fetch-priority order.
var keyPagePaths = []string{
	"",
	"/about",
	"/about-us",
	"/company",
	"/sustainability",
	"/csr",
	"/esg",
	"/community",
	"/foundation",
	"/partnership",
	"/partnerships",
	"/sponsorship",
	"/contact",
	"/contact-us",
}

// GuessKeyPages returns likely URLs for About/CSR/Partnership/Contact pages
// on the given website, same-host filtered and de-duplicated while
// preserving order. A bare domain is upgraded to https.
func GuessKeyPages(website string) []string {
	website = strings.TrimSpace(website)
	if website == "" {
		return nil
	}
	if !strings.HasPrefix(website, "http") {
		website = "https://" + website
	}

	base := strings.TrimRight(website, "/")
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Host == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, p := range keyPagePaths {
		u := base + p
		parsed, err := url.Parse(u)
		if err != nil || parsed.Host != baseURL.Host {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
