package research

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

const (
	maxPageExcerpt = 4000
	maxJoinedText  = 12000
	maxSourceRefs  = 5
)

// Profiler summarizes a company's pages into a structured profile for
// sponsorship outreach. When the generation capability is unavailable it
// degrades to a heuristic profile so research never blocks on the LLM.
type Profiler struct {
	llm llm.Client
}

// NewProfiler creates a Profiler backed by the given generation client.
func NewProfiler(client llm.Client) *Profiler {
	return &Profiler{llm: client}
}

type profilePayload struct {
	Summary           string `json:"summary"`
	MissionValues     string `json:"mission_values"`
	CSRFocus          string `json:"csr_focus"`
	RecentInitiatives string `json:"recent_initiatives"`
	AlignmentAngles   string `json:"alignment_angles"`
	Sources           []struct {
		URL  string `json:"url"`
		Note string `json:"note"`
	} `json:"sources"`
}

// Summarize builds a company profile from fetched pages. Any generation
// failure falls back to the deterministic heuristic profile.
func (p *Profiler) Summarize(ctx context.Context, companyName string, pages []model.Page, language string) *model.CompanyProfile {
	var joined strings.Builder
	for _, pg := range pages {
		excerpt := pg.Text
		if len(excerpt) > maxPageExcerpt {
			excerpt = excerpt[:maxPageExcerpt]
		}
		fmt.Fprintf(&joined, "SOURCE: %s\n%s\n\n", pg.URL, excerpt)
	}
	text := joined.String()
	if len(text) > maxJoinedText {
		text = text[:maxJoinedText]
	}

	prompt := fmt.Sprintf(`Summarize this company in JSON for sponsorship outreach.

Language: %s
Company: %s

Pages text (multiple sources):
%s

Return JSON keys:
- summary
- mission_values
- csr_focus
- recent_initiatives
- alignment_angles (how they might align with an NGO/event sponsorship)
- sources (array of objects: url, note)
`, language, companyName, text)

	var payload profilePayload
	err := llm.CompleteJSON(ctx, p.llm, []llm.Message{{Role: "user", Content: prompt}}, 0.2, 1200, &payload)
	if err != nil {
		if !llm.IsNotConfigured(err) {
			zap.L().Warn("research: profile generation failed, using heuristic fallback",
				zap.String("company", companyName), zap.Error(err))
		}
		return heuristicProfile(companyName, pages)
	}

	profile := &model.CompanyProfile{
		Summary:           payload.Summary,
		MissionValues:     payload.MissionValues,
		CSRFocus:          payload.CSRFocus,
		RecentInitiatives: payload.RecentInitiatives,
		AlignmentAngles:   payload.AlignmentAngles,
	}
	for _, s := range payload.Sources {
		profile.Sources = append(profile.Sources, model.SourceRef{URL: s.URL, Note: s.Note})
	}
	return profile
}

// heuristicProfile is the offline fallback: a minimal profile citing the
// fetched pages. It must never fail.
func heuristicProfile(companyName string, pages []model.Page) *model.CompanyProfile {
	profile := &model.CompanyProfile{
		Summary:         fmt.Sprintf("%s (auto summary from website pages).", companyName),
		AlignmentAngles: "Potential alignment on community impact / CSR.",
	}
	for i, pg := range pages {
		if i >= maxSourceRefs {
			break
		}
		profile.Sources = append(profile.Sources, model.SourceRef{URL: pg.URL, Note: "website page"})
	}
	return profile
}
