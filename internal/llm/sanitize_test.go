package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "bare object",
			response: `{"parties": null}`,
			want:     `{"parties": null}`,
		},
		{
			name:     "json fence",
			response: "```json\n{\"a\": 1}\n```",
			want:     `{"a": 1}`,
		},
		{
			name:     "plain fence",
			response: "```\n{\"a\": 1}\n```",
			want:     `{"a": 1}`,
		},
		{
			name:     "preamble before object",
			response: `Here's the parsed agreement: {"a": 1}`,
			want:     `{"a": 1}`,
		},
		{
			name:     "chatter around object",
			response: "Sure. The result follows.\n{\"a\": {\"b\": 2}}\nLet me know if you need more.",
			want:     `{"a": {"b": 2}}`,
		},
		{
			name:     "no object at all",
			response: "I could not find any deal terms in this document.",
			wantErr:  true,
		},
		{
			name:     "empty response",
			response: "",
			wantErr:  true,
		},
		{
			name:     "only closing brace",
			response: "} nothing here",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.response)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAgreementJSONFillsMissingKeys(t *testing.T) {
	raw := []byte(`{"parties": {"licensor": {"name": "Sony Pictures"}}, "territories": ["INDIA"]}`)

	out, nulled, err := NormalizeAgreementJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	for _, k := range RequiredKeys {
		_, ok := m[k]
		assert.True(t, ok, "key %q must be present", k)
	}
	assert.Nil(t, m["financial"])
	assert.NotNil(t, m["parties"])
	assert.Contains(t, nulled, "financial")
	assert.NotContains(t, nulled, "territories")
}

func TestNormalizeAgreementJSONRejectsEmptyObject(t *testing.T) {
	_, _, err := NormalizeAgreementJSON([]byte(`{}`), nil)
	assert.Error(t, err)

	_, _, err = NormalizeAgreementJSON([]byte(`not json`), nil)
	assert.Error(t, err)
}

func TestNormalizeAgreementJSONRewritesDates(t *testing.T) {
	raw := []byte(`{
		"term": {"start_date": "01/04/2025", "end_date": "2030-03-31"},
		"content": {"release_date": "January 2, 2024"},
		"signatories": [{"name": "A. Mehta", "date": "15/06/2025"}],
		"deliverables": {"delivery_deadline": "2025/07/01"},
		"financial": {"deal_value": "USD 2,500,000"}
	}`)

	out, _, err := NormalizeAgreementJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	term := m["term"].(map[string]any)
	assert.Equal(t, "2025-04-01", term["start_date"])
	assert.Equal(t, "2030-03-31", term["end_date"])

	content := m["content"].(map[string]any)
	assert.Equal(t, "2024-01-02", content["release_date"])

	sig := m["signatories"].([]any)[0].(map[string]any)
	assert.Equal(t, "2025-06-15", sig["date"])

	del := m["deliverables"].(map[string]any)
	assert.Equal(t, "2025-07-01", del["delivery_deadline"])

	// monetary values stay exactly as presented
	fin := m["financial"].(map[string]any)
	assert.Equal(t, "USD 2,500,000", fin["deal_value"])
}

func TestNormalizeAgreementJSONScrubsPlaceholders(t *testing.T) {
	raw := []byte(`{
		"parties": {"licensor": {"name": "Sony Pictures"}, "licensee": "string"},
		"content": {"title": "Kalki 2898 AD", "genre": ["Genre1", "Action"], "director": "Director name", "language": "Primary language"},
		"term": {"start_date": "YYYY-MM-DD", "end_date": "2031-12-31"},
		"governing_law": "string"
	}`)

	out, _, err := NormalizeAgreementJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	parties := m["parties"].(map[string]any)
	assert.Nil(t, parties["licensee"])
	assert.NotNil(t, parties["licensor"])

	content := m["content"].(map[string]any)
	assert.Equal(t, "Kalki 2898 AD", content["title"])
	assert.Equal(t, []any{"Action"}, content["genre"])
	assert.Nil(t, content["director"])
	assert.Nil(t, content["language"])

	term := m["term"].(map[string]any)
	assert.Nil(t, term["start_date"])
	assert.Equal(t, "2031-12-31", term["end_date"])

	assert.Nil(t, m["governing_law"])
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-04-01", "2025-04-01"},
		{"01/04/2025", "2025-04-01"},
		{"2 January 2026", "2026-01-02"},
		{"Jan 2, 2026", "2026-01-02"},
		{"2025/07/01", "2025-07-01"},
		{"  2025-04-01  ", "2025-04-01"},
		{"five years from signing", "five years from signing"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}
