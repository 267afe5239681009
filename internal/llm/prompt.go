package llm

import "strings"

// BuildExtractionPrompt composes the fixed textual contract sent to the
// extraction engine: the agreement text (truncated to maxChars; the parties
// and deal terms sit in the opening pages) followed by the field list and
// strict formatting rules.
func BuildExtractionPrompt(agreementText string, maxChars int) string {
	text := agreementText
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}

	var b strings.Builder
	b.WriteString("Extract structured deal terms from this media rights licensing agreement.\n\n")
	b.WriteString("Agreement Text:\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString("Return a single JSON object with exactly these top-level fields:\n")
	b.WriteString(`- parties: {"licensor": {...}, "licensee": {...}} with name, country, signatory where visible
- content: title, original_title, type ("MOVIE" or "SERIES"), language, genre array, duration, release_date
- territories: array of country names in UPPERCASE (e.g. ["INDIA"])
- media_rights: array of rights types (e.g. ["SVOD", "LINEAR_TV"])
- term: {"years": N, "start_date": "YYYY-MM-DD", "end_date": "YYYY-MM-DD", "exclusivity": true/false}
- financial: {"deal_value": "as written in the document", "currency": "USD"/"INR"/"USDC", "payment_structure": {...}}
- deliverables: video/audio formats, subtitles, dubbing, delivery deadline
- technical_specs: video_codec, audio_codec, container_format, drm_required, drm_type
- governing_law: governing law and dispute resolution as stated
- signatories: array of {"name", "title", "party", "date"}
`)
	b.WriteString("\nRules:\n")
	b.WriteString("- Keep monetary values and durations exactly as written; do not convert units.\n")
	b.WriteString("- Dates in YYYY-MM-DD format.\n")
	b.WriteString("- If a field cannot be found, use null. Never invent values.\n")
	b.WriteString("- DO NOT output placeholders like \"string\" or \"YYYY-MM-DD\".\n")
	b.WriteString("- Return ONLY valid JSON, no commentary.\n")
	return b.String()
}
