package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

// maxProposalChars bounds the proposal excerpt in the extraction prompt;
// proposal PDFs can be huge.
const maxProposalChars = 25000

const orgExtractSystemPrompt = `You extract structured sponsorship/outreach information from raw proposal PDF text.

Rules:
- Return ONLY valid JSON. No markdown, no explanations.
- If a field is not present, return "" (empty string).
- Do NOT invent facts, dates, numbers, sponsors, or metrics. If unsure, keep it "".
- Prefer short, clean phrasing that can be pasted into an email.
- Values must be strings (bullet lists are a single string with newlines).`

type orgFieldsPayload struct {
	OrgName          string `json:"org_name"`
	OrgWebsite       string `json:"org_website"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	Mission          string `json:"mission"`
	Programs         string `json:"programs"`
	EventSummary     string `json:"event_summary"`
	SponsorshipAsk   string `json:"sponsorship_ask"`
	SponsorshipTiers string `json:"sponsorship_tiers"`
	Audience         string `json:"audience"`
	ImpactMetrics    string `json:"impact_metrics"`
}

// ExtractOrgProfile extracts org-profile fields from raw proposal text via
// the generation capability and writes them into org. An unconfigured
// provider is a valid "extract nothing" state, not an error: org is left
// untouched and the user fills fields manually.
func ExtractOrgProfile(ctx context.Context, client llm.Client, org *model.OrgProfile, rawText string) error {
	text := strings.TrimSpace(rawText)
	if len(text) > maxProposalChars {
		text = text[:maxProposalChars]
	}

	prompt := fmt.Sprintf(`You are given raw text extracted from a sponsorship proposal PDF.
Your job: extract structured information and return ONLY valid JSON.

Return JSON with EXACT keys (no additional keys):
org_name, org_website, contact_name, contact_email, contact_phone,
mission, programs, event_summary, sponsorship_ask, sponsorship_tiers,
audience, impact_metrics

FIELD GUIDANCE:
- org_name: official organization/club/project name.
- org_website: official website URL (if any).
- contact_name / contact_email / contact_phone: only if explicitly present; otherwise "".
- mission: 1-2 sentences summarizing mission/vision.
- programs: up to 6 bullets describing ongoing programs (one per line).
- event_summary: 4-8 lines max; what the event is, when/where, purpose, format, who participates.
- sponsorship_ask: up to 6 bullets describing what you want from sponsors and what sponsors get.
- sponsorship_tiers: if tiers exist, one line each as "Tier name - price (if shown) - key benefits"; else "".
- audience: up to 4 bullets; include numbers/demographics/reach if present.
- impact_metrics: up to 6 bullets; only quantified results or clearly stated outcomes.

PDF_TEXT:
%s
`, text)

	var payload orgFieldsPayload
	err := llm.CompleteJSON(ctx, client,
		[]llm.Message{
			{Role: "system", Content: orgExtractSystemPrompt},
			{Role: "user", Content: prompt},
		}, 0.2, 1200, &payload)
	if err != nil {
		if llm.IsNotConfigured(err) {
			return nil
		}
		return err
	}

	org.OrgName = strings.TrimSpace(payload.OrgName)
	org.OrgWebsite = strings.TrimSpace(payload.OrgWebsite)
	org.ContactName = strings.TrimSpace(payload.ContactName)
	org.ContactEmail = strings.TrimSpace(payload.ContactEmail)
	org.ContactPhone = strings.TrimSpace(payload.ContactPhone)
	org.Mission = strings.TrimSpace(payload.Mission)
	org.Programs = strings.TrimSpace(payload.Programs)
	org.EventSummary = strings.TrimSpace(payload.EventSummary)
	org.SponsorshipAsk = strings.TrimSpace(payload.SponsorshipAsk)
	org.SponsorshipTiers = strings.TrimSpace(payload.SponsorshipTiers)
	org.Audience = strings.TrimSpace(payload.Audience)
	org.ImpactMetrics = strings.TrimSpace(payload.ImpactMetrics)
	return nil
}
