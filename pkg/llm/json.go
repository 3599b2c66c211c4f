package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

const jsonOnlySystemPrompt = "Return ONLY valid JSON. No markdown, no commentary."

// CompleteJSON asks the model for JSON-only output and decodes the result
// into out. Model wrappers around the JSON are tolerated: the first
// top-level {...} span is extracted, and a single repair pass strips
// trailing commas before closing braces/brackets.
func CompleteJSON(ctx context.Context, c Client, messages []Message, temperature float64, maxTokens int, out any) error {
	req := ChatCompletionRequest{
		Messages:    append([]Message{{Role: "system", Content: jsonOnlySystemPrompt}}, messages...),
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	raw, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return err
	}

	return DecodeJSON(raw, out)
}

// DecodeJSON extracts and decodes the first JSON object from raw model
// output.
func DecodeJSON(raw string, out any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return eris.Errorf("llm: no JSON object found in output: %s", truncate(raw, 400))
	}
	span := raw[start : end+1]

	if err := json.Unmarshal([]byte(span), out); err == nil {
		return nil
	}

	// One bounded repair attempt: drop trailing commas before } and ].
	repaired := strings.ReplaceAll(span, ",}", "}")
	repaired = strings.ReplaceAll(repaired, ",]", "]")
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return eris.Wrap(err, "llm: decode JSON output")
	}
	return nil
}
