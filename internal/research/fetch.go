package research

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	userAgent   = "Mozilla/5.0 (compatible; OutreachBot/1.0)"
	maxBodySize = 1 << 20
)

// Fetcher downloads company pages and converts them to plaintext. Fetches
// are rate limited so a research run stays polite to one host.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given per-request timeout and
// fetch rate. A non-positive rate disables throttling.
func NewFetcher(timeout time.Duration, perSec float64) *Fetcher {
	limit := rate.Inf
	if perSec > 0 {
		limit = rate.Limit(perSec)
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Fetch retrieves targetURL following redirects and returns the final URL
// and the cleaned page text. Non-2xx responses are errors; the caller is
// expected to catch and skip.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (string, string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", "", eris.Wrap(err, "fetch: rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", "", eris.Wrap(err, "fetch: create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", eris.Wrap(err, "fetch: get")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", eris.Errorf("fetch: status %d for %s", resp.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", "", eris.Wrap(err, "fetch: read body")
	}

	text, err := CleanHTML(string(body))
	if err != nil {
		return "", "", err
	}

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return finalURL, text, nil
}

var (
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanHTML strips scripts, styles, and markup from an HTML document and
// normalizes whitespace, producing plaintext suitable for email extraction
// and LLM summarization.
func CleanHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", eris.Wrap(err, "fetch: parse html")
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if text == "" {
		text = doc.Text()
	}

	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
