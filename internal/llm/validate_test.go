package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgreementSchema(t *testing.T) {
	schema := BuildAgreementJSONSchema()

	t.Run("normalized payload passes", func(t *testing.T) {
		raw := []byte(`{"parties": {"licensor": {"name": "Sony"}}, "territories": ["INDIA"]}`)
		normalized, _, err := NormalizeAgreementJSON(raw, nil)
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, normalized))
	})

	t.Run("missing required key fails", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"parties": null}`))
		assert.Error(t, err)
	})

	t.Run("all nulls pass", func(t *testing.T) {
		raw := []byte(`{"parties": null, "content": null, "territories": null,
			"media_rights": null, "term": null, "financial": null,
			"deliverables": null, "technical_specs": null,
			"governing_law": null, "signatories": null}`)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, raw))
	})

	t.Run("wrong type fails", func(t *testing.T) {
		raw := []byte(`{"parties": 42, "content": null, "territories": null,
			"media_rights": null, "term": null, "financial": null,
			"deliverables": null, "technical_specs": null,
			"governing_law": null, "signatories": null}`)
		assert.Error(t, ValidateJSONAgainstSchema(schema, raw))
	})

	t.Run("not json fails", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte("nope")))
	})
}
