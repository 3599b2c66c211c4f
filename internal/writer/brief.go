package writer

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

// BuildBrief combines the org and company profiles into a structured
// personalization brief via the generation capability. Any failure falls
// back to a deterministic brief, keeping the pipeline offline-capable.
func BuildBrief(ctx context.Context, client llm.Client, org, company map[string]string, language string) *model.Brief {
	prompt := fmt.Sprintf(`You are writing a sponsorship outreach email. Create a personalization brief in JSON.

Language: %s

Org/Event info:
%s

Company info:
%s

Return JSON with keys:
- company_angle (string)
- why_match (array of 2-3 bullets)
- best_cta (string)
- benefits (array of 3 bullets)
- subject_ideas (array of 3 short subject lines)
`, language, formatFields(org), formatFields(company))

	var brief model.Brief
	err := llm.CompleteJSON(ctx, client, []llm.Message{{Role: "user", Content: prompt}}, 0.2, 1200, &brief)
	if err != nil {
		if !llm.IsNotConfigured(err) {
			zap.L().Warn("writer: brief generation failed, using fallback", zap.Error(err))
		}
		return fallbackBrief(org, company, language)
	}
	return &brief
}

// fallbackBrief builds a minimal brief from whatever CSR/mission fields the
// company profile carries. It must never fail.
func fallbackBrief(org, company map[string]string, language string) *model.Brief {
	orgName := org["org_name"]

	if language == "vi" {
		angle := firstNonEmpty(company["csr_focus"], company["mission_values"], "phát triển bền vững / cộng đồng")
		name := firstNonEmpty(orgName, "chương trình")
		return &model.Brief{
			CompanyAngle: angle,
			WhyMatch:     []string{"Cùng hướng đến tác động tích cực cho cộng đồng."},
			BestCTA:      "một cuộc gọi 15 phút",
			Benefits: []string{
				"Gắn thương hiệu với chương trình có tác động xã hội rõ ràng",
				"Hiện diện trên kênh truyền thông của chương trình",
				"Báo cáo/ghi nhận tác động sau chương trình",
			},
			SubjectIdeas: []string{
				fmt.Sprintf("Đề xuất đồng hành tài trợ cùng %s", name),
				fmt.Sprintf("Cơ hội hợp tác CSR: %s", name),
				"Kết nối hợp tác tài trợ",
			},
		}
	}

	angle := firstNonEmpty(company["csr_focus"], company["mission_values"], "sustainability / community impact")
	name := firstNonEmpty(orgName, "our program")
	return &model.Brief{
		CompanyAngle: angle,
		WhyMatch:     []string{"Shared commitment to positive community impact."},
		BestCTA:      "a 15-minute call",
		Benefits: []string{
			"Associate your brand with a program of clear social impact",
			"Visibility across the program's media channels",
			"Post-event impact reporting and recognition",
		},
		SubjectIdeas: []string{
			fmt.Sprintf("Sponsorship partnership proposal: %s", name),
			fmt.Sprintf("CSR collaboration opportunity: %s", name),
			"Sponsorship partnership",
		},
	}
}

func formatFields(m map[string]string) string {
	var out string
	for _, k := range fieldOrder(m) {
		if m[k] == "" {
			continue
		}
		out += fmt.Sprintf("%s: %s\n", k, m[k])
	}
	return out
}

// fieldOrder returns map keys sorted so prompts are deterministic.
func fieldOrder(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
