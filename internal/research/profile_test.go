package research

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

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

func TestSummarize(t *testing.T) {
	client := stubClient{response: `{
		"summary": "Acme builds widgets.",
		"mission_values": "quality first",
		"csr_focus": "reforestation",
		"recent_initiatives": "tree planting 2025",
		"alignment_angles": "environmental events",
		"sources": [{"url": "https://acme.com/csr", "note": "csr page"}]
	}`}
	p := NewProfiler(client)

	profile := p.Summarize(context.Background(), "Acme", []model.Page{{URL: "https://acme.com", Text: "Acme"}}, "en")
	require.NotNil(t, profile)
	assert.Equal(t, "Acme builds widgets.", profile.Summary)
	assert.Equal(t, "reforestation", profile.CSRFocus)
	require.Len(t, profile.Sources, 1)
	assert.Equal(t, "https://acme.com/csr", profile.Sources[0].URL)
}

func TestSummarizeOfflineFallback(t *testing.T) {
	client := stubClient{err: eris.Wrap(llm.ErrNotConfigured, "llm: provider=none (offline mode)")}
	p := NewProfiler(client)

	pages := []model.Page{
		{URL: "https://acme.com", Text: "a"},
		{URL: "https://acme.com/about", Text: "b"},
	}
	profile := p.Summarize(context.Background(), "Acme", pages, "en")
	require.NotNil(t, profile)
	assert.Equal(t, "Acme (auto summary from website pages).", profile.Summary)
	assert.Equal(t, "Potential alignment on community impact / CSR.", profile.AlignmentAngles)
	assert.Len(t, profile.Sources, 2)
}

func TestSummarizeGenerationErrorFallsBack(t *testing.T) {
	client := stubClient{err: eris.New("upstream 500")}
	p := NewProfiler(client)

	profile := p.Summarize(context.Background(), "Acme", nil, "en")
	require.NotNil(t, profile)
	assert.Equal(t, "Acme (auto summary from website pages).", profile.Summary)
	assert.Empty(t, profile.Sources)
}

func TestSummarizeSourceCap(t *testing.T) {
	client := stubClient{err: eris.New("fail")}
	p := NewProfiler(client)

	var pages []model.Page
	for i := 0; i < 8; i++ {
		pages = append(pages, model.Page{URL: "https://acme.com", Text: "x"})
	}
	profile := p.Summarize(context.Background(), "Acme", pages, "en")
	assert.Len(t, profile.Sources, maxSourceRefs)
}
