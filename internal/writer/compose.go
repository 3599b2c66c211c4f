package writer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

const (
	// NotesGenerated marks emails produced by the generation capability;
	// a human should double-check AI-authored prose before approving.
	NotesGenerated = "LLM-generated with brief."
	// NotesTemplate marks emails rendered by the offline template path.
	NotesTemplate = "Template-generated (offline fallback)."

	maxAskLen = 140
)

// Compose renders the final outreach email. The primary path is one
// generation call producing "subject\n\nbody"; the secondary path is
// deterministic template rendering. The returned notes record which path
// produced the result.
func Compose(ctx context.Context, client llm.Client, org, company map[string]string, brief *model.Brief, language string) (subject, body, notes string) {
	prompt := fmt.Sprintf(`Write a concise sponsorship outreach email.

Language: %s
Constraints:
- 120-180 words
- 1 clear ask (CTA)
- Mention attachment (sponsorship deck)
- Use facts only from the provided org/event + company profile (no hallucination)
- Friendly, professional tone

Org/Event:
%s

Company:
%s

Personalization brief:
company_angle: %s
why_match: %s
best_cta: %s
benefits: %s

Return:
1) Subject line
2) Email body (plain text)

Separate subject and body with a blank line.
`, language, formatFields(org), formatFields(company), brief.CompanyAngle, strings.Join(brief.WhyMatch, "; "), brief.BestCTA, strings.Join(brief.Benefits, "; "))

	temperature := 0.4
	maxTokens := 700
	out, err := client.ChatCompletion(ctx, llm.ChatCompletionRequest{
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		if !llm.IsNotConfigured(err) {
			zap.L().Warn("writer: email generation failed, using template", zap.Error(err))
		}
		return ComposeTemplate(org, company, brief, language)
	}

	// Split on the first blank line. A response without one keeps the whole
	// text as body and borrows the brief's first subject idea.
	head, rest, found := strings.Cut(strings.TrimSpace(out), "\n\n")
	if !found {
		subject = defaultSubject(brief, language)
		body = head
	} else {
		subject = strings.TrimSpace(head)
		body = strings.TrimSpace(rest)
	}
	return subject, body, NotesGenerated
}

// ComposeTemplate renders the deterministic bilingual template, filling
// missing brief/profile fields with defaults. It always produces exactly
// three benefit lines.
func ComposeTemplate(org, company map[string]string, brief *model.Brief, language string) (subject, body, notes string) {
	subject = defaultSubject(brief, language)

	benefit := func(idx int, fallback string) string {
		if idx < len(brief.Benefits) && brief.Benefits[idx] != "" {
			return brief.Benefits[idx]
		}
		return fallback
	}

	greeting := firstNonEmpty(company["contact_name"], "there")
	angleDefault := "community impact"
	ctaDefault := "a 15-minute call"
	if language == "vi" {
		greeting = firstNonEmpty(company["contact_name"], "anh/chị")
		angleDefault = "cộng đồng"
		ctaDefault = "một cuộc gọi 15 phút"
	}

	ask := firstNonEmpty(org["sponsorship_ask"], "support our program")
	ask, _, _ = strings.Cut(ask, "\n")
	if len(ask) > maxAskLen {
		ask = ask[:maxAskLen]
	}

	tpl := enTemplate
	if language == "vi" {
		tpl = viTemplate
	}

	body = fmt.Sprintf(tpl,
		greeting,
		firstNonEmpty(org["contact_name"], "Team"),
		firstNonEmpty(org["org_name"], "our organization"),
		firstNonEmpty(company["name"], "your company"),
		firstNonEmpty(brief.CompanyAngle, angleDefault),
		firstNonEmpty(org["event_summary"], "program"),
		ask,
		benefit(0, "Brand exposure to a relevant audience"),
		benefit(1, "Meaningful community impact"),
		benefit(2, "Post-event impact reporting"),
		firstNonEmpty(brief.BestCTA, ctaDefault),
		org["contact_email"],
	)
	return subject, body, NotesTemplate
}

func defaultSubject(brief *model.Brief, language string) string {
	for _, s := range brief.SubjectIdeas {
		if s != "" {
			return s
		}
	}
	if language == "vi" {
		return "Hợp tác tài trợ"
	}
	return "Sponsorship partnership"
}
