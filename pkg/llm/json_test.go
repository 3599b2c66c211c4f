package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    payload
		wantErr bool
	}{
		{
			name: "clean object",
			raw:  `{"name":"acme","count":2}`,
			want: payload{Name: "acme", Count: 2},
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"name\":\"acme\",\"count\":2}\n```",
			want: payload{Name: "acme", Count: 2},
		},
		{
			name: "prose around object",
			raw:  `Here is the JSON you asked for: {"name":"acme","count":2} hope it helps`,
			want: payload{Name: "acme", Count: 2},
		},
		{
			name: "trailing comma repaired",
			raw:  `{"name":"acme","count":2,}`,
			want: payload{Name: "acme", Count: 2},
		},
		{
			name:    "no object",
			raw:     "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "irreparable",
			raw:     `{"name": acme}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := DecodeJSON(tt.raw, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type recordingClient struct {
	req      ChatCompletionRequest
	response string
}

func (r *recordingClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error) {
	r.req = req
	return r.response, nil
}

func TestCompleteJSONPrependsSystemPrompt(t *testing.T) {
	client := &recordingClient{response: `{"name":"acme","count":1}`}

	var got payload
	err := CompleteJSON(context.Background(), client, []Message{{Role: "user", Content: "summarize"}}, 0.2, 100, &got)
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "acme", Count: 1}, got)

	require.Len(t, client.req.Messages, 2)
	assert.Equal(t, "system", client.req.Messages[0].Role)
	assert.Equal(t, jsonOnlySystemPrompt, client.req.Messages[0].Content)
	assert.Equal(t, "user", client.req.Messages[1].Role)
	require.NotNil(t, client.req.Temperature)
	assert.InDelta(t, 0.2, *client.req.Temperature, 1e-9)
}
