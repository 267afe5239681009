package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPromptTruncates(t *testing.T) {
	long := strings.Repeat("a", 20000)
	prompt := BuildExtractionPrompt(long, 10000)

	assert.Contains(t, prompt, strings.Repeat("a", 10000))
	assert.NotContains(t, prompt, strings.Repeat("a", 10001))
}

func TestBuildExtractionPromptKeepsShortText(t *testing.T) {
	text := "Sony Pictures licenses Spider-Man to Zee Entertainment."
	prompt := BuildExtractionPrompt(text, 10000)

	assert.Contains(t, prompt, text)
	for _, k := range RequiredKeys {
		assert.Contains(t, prompt, k, "prompt must name field %q", k)
	}
	assert.Contains(t, prompt, "ONLY valid JSON")
}

func TestBuildExtractionPromptZeroMaxMeansNoTruncation(t *testing.T) {
	long := strings.Repeat("b", 15000)
	prompt := BuildExtractionPrompt(long, 0)
	assert.Contains(t, prompt, long)
}
