package ingest

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

func TestExtractOrgProfile(t *testing.T) {
	client := stubClient{response: `{
		"org_name": " Green Steps ",
		"org_website": "https://greensteps.org",
		"contact_name": "Lan",
		"contact_email": "lan@greensteps.org",
		"contact_phone": "",
		"mission": "Plant trees.",
		"programs": "- urban forests",
		"event_summary": "Green Run 2026 in Hanoi",
		"sponsorship_ask": "- fund 10k trees",
		"sponsorship_tiers": "",
		"audience": "- 5k runners",
		"impact_metrics": "- 40k trees planted"
	}`}

	org := &model.OrgProfile{}
	err := ExtractOrgProfile(context.Background(), client, org, "raw proposal text")
	require.NoError(t, err)

	assert.Equal(t, "Green Steps", org.OrgName)
	assert.Equal(t, "https://greensteps.org", org.OrgWebsite)
	assert.Equal(t, "lan@greensteps.org", org.ContactEmail)
	assert.Equal(t, "Green Run 2026 in Hanoi", org.EventSummary)
	assert.Empty(t, org.SponsorshipTiers)
	assert.False(t, org.IsEmpty())
}

func TestExtractOrgProfileOfflineLeavesOrgUntouched(t *testing.T) {
	client := stubClient{err: eris.Wrap(llm.ErrNotConfigured, "llm: provider=none (offline mode)")}

	org := &model.OrgProfile{OrgName: "Keep Me"}
	err := ExtractOrgProfile(context.Background(), client, org, "raw text")
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", org.OrgName)
}

func TestExtractOrgProfileGenerationError(t *testing.T) {
	client := stubClient{err: eris.New("upstream 500")}

	org := &model.OrgProfile{}
	err := ExtractOrgProfile(context.Background(), client, org, "raw text")
	require.Error(t, err)
}
