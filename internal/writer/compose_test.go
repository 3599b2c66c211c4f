package writer

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

// stubClient returns a canned response or error.
type stubClient struct {
	response string
	err      error
}

func (s stubClient) ChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func offlineClient() stubClient {
	return stubClient{err: eris.Wrap(llm.ErrNotConfigured, "llm: provider=none (offline mode)")}
}

// captureClient records prompts while returning a canned response.
type captureClient struct {
	response string
	prompts  []string
}

func (c *captureClient) ChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (string, error) {
	for _, m := range req.Messages {
		c.prompts = append(c.prompts, m.Content)
	}
	return c.response, nil
}

func testBrief() *model.Brief {
	return &model.Brief{
		CompanyAngle: "reforestation",
		BestCTA:      "a 15-minute call",
		Benefits:     []string{"Logo on stage", "Newsletter feature"},
		SubjectIdeas: []string{"Partner with Green Steps"},
	}
}

func TestComposeSplitsSubjectAndBody(t *testing.T) {
	client := stubClient{response: "A bold subject\n\nDear team,\n\nbody here."}

	subject, body, notes := Compose(context.Background(), client, nil, nil, testBrief(), "en")
	assert.Equal(t, "A bold subject", subject)
	assert.Equal(t, "Dear team,\n\nbody here.", body)
	assert.Equal(t, NotesGenerated, notes)
}

func TestComposeNoBlankLineFallsBackToSubjectIdea(t *testing.T) {
	client := stubClient{response: "just one paragraph with no separator"}

	subject, body, notes := Compose(context.Background(), client, nil, nil, testBrief(), "en")
	assert.Equal(t, "Partner with Green Steps", subject)
	assert.Equal(t, "just one paragraph with no separator", body)
	assert.Equal(t, NotesGenerated, notes)
}

func TestComposePromptCarriesBriefFields(t *testing.T) {
	client := &captureClient{response: "Subject\n\nBody"}
	brief := testBrief()
	brief.WhyMatch = []string{"shared reforestation focus", "local roots"}

	_, _, notes := Compose(context.Background(), client, nil, nil, brief, "en")
	assert.Equal(t, NotesGenerated, notes)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "company_angle: reforestation")
	assert.Contains(t, prompt, "why_match: shared reforestation focus; local roots")
	assert.Contains(t, prompt, "best_cta: a 15-minute call")
	assert.Contains(t, prompt, "benefits: Logo on stage; Newsletter feature")
}

func TestComposeOfflineUsesTemplate(t *testing.T) {
	org := map[string]string{
		"org_name":        "Green Steps",
		"contact_name":    "Lan",
		"contact_email":   "lan@greensteps.org",
		"event_summary":   "Green Run 2026",
		"sponsorship_ask": "fund 10k trees",
	}
	company := map[string]string{"name": "Acme"}

	subject, body, notes := Compose(context.Background(), offlineClient(), org, company, testBrief(), "en")
	assert.Equal(t, NotesTemplate, notes)
	assert.Equal(t, "Partner with Green Steps", subject)
	assert.Contains(t, body, "Green Steps")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "fund 10k trees")
	assert.Contains(t, body, "lan@greensteps.org")
}

func TestComposeTemplateAlwaysThreeBenefits(t *testing.T) {
	brief := &model.Brief{Benefits: []string{"Only one"}}

	_, body, _ := ComposeTemplate(nil, nil, brief, "en")
	assert.Contains(t, body, "- Only one")
	assert.Contains(t, body, "- Meaningful community impact")
	assert.Contains(t, body, "- Post-event impact reporting")
	assert.Equal(t, 3, strings.Count(body, "\n- "))
}

func TestComposeTemplateAskTruncated(t *testing.T) {
	org := map[string]string{
		"sponsorship_ask": strings.Repeat("a", 200) + "\nsecond line dropped",
	}

	_, body, _ := ComposeTemplate(org, nil, &model.Brief{}, "en")
	assert.Contains(t, body, strings.Repeat("a", 140))
	assert.NotContains(t, body, strings.Repeat("a", 141))
	assert.NotContains(t, body, "second line dropped")
}

func TestComposeTemplateVietnameseDefaults(t *testing.T) {
	subject, body, _ := ComposeTemplate(nil, nil, &model.Brief{}, "vi")
	assert.Equal(t, "Hợp tác tài trợ", subject)
	assert.Contains(t, body, "Xin chào anh/chị,")
}

func TestDefaultSubjectSkipsEmptyIdeas(t *testing.T) {
	brief := &model.Brief{SubjectIdeas: []string{"", "Second idea"}}
	assert.Equal(t, "Second idea", defaultSubject(brief, "en"))
	assert.Equal(t, "Sponsorship partnership", defaultSubject(&model.Brief{}, "en"))
	assert.Equal(t, "Hợp tác tài trợ", defaultSubject(&model.Brief{}, "vi"))
}
