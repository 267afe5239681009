package llm

// BuildAgreementJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Every required key must be PRESENT, but any of them may be
// null; the engine is allowed to say "not found", not to omit the field.
func BuildAgreementJSONSchema() map[string]any {
	props := map[string]any{
		"parties":         typeOrNull("object"),
		"content":         typeOrNull("object"),
		"territories":     typeOrNull("array", "string"),
		"media_rights":    typeOrNull("array", "string"),
		"term":            typeOrNull("object", "string"),
		"financial":       typeOrNull("object", "string"),
		"deliverables":    typeOrNull("object", "array"),
		"technical_specs": typeOrNull("object"),
		"governing_law":   typeOrNull("string", "object"),
		"signatories":     typeOrNull("array", "object"),
	}

	return map[string]any{
		"type":          "object",
		"minProperties": 1,
		"properties":    props,
		"required":      RequiredKeys,
	}
}

func typeOrNull(types ...string) map[string]any {
	all := make([]string, 0, len(types)+1)
	all = append(all, types...)
	all = append(all, "null")
	return map[string]any{"type": all}
}
