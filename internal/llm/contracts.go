package llm

import "context"

// RequiredKeys is the fixed set of top-level fields an extracted agreement
// must carry. Keys the model omits are tolerated as null, never absent.
var RequiredKeys = []string{
	"parties",
	"content",
	"territories",
	"media_rights",
	"term",
	"financial",
	"deliverables",
	"technical_specs",
	"governing_law",
	"signatories",
}

// TextGenerator is the extraction engine as the pipeline sees it: prompt in,
// text out, no output structure guaranteed. Validation and retry live with
// the caller, never here.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
