package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrNoJSON is returned when no JSON object can be carved out of the
// engine's raw response.
var ErrNoJSON = errors.New("no JSON object in response")

var preambles = []string{
	"here's the parsed agreement:",
	"here is the parsed agreement:",
	"based on the agreement:",
	"the parsed agreement is:",
	"output:",
	"result:",
}

// ExtractJSONBlock carves the JSON object out of a raw model response:
// markdown fences and known preambles are stripped, then everything between
// the first '{' and the last '}' is kept.
func ExtractJSONBlock(response string) (string, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	lower := strings.ToLower(cleaned)
	for _, p := range preambles {
		if idx := strings.Index(lower, p); idx >= 0 {
			cleaned = strings.TrimSpace(cleaned[idx+len(p):])
			lower = strings.ToLower(cleaned)
		}
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	return cleaned[start : end+1], nil
}

// NormalizeAgreementJSON decodes the carved JSON, inserts null for any
// missing required top-level key, nulls placeholder echoes of the prompt
// template, and normalizes date-like string values to YYYY-MM-DD. Monetary
// values and durations are left exactly as presented.
func NormalizeAgreementJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("normalize: decode: %w", err)
	}
	if len(m) == 0 {
		return nil, nil, fmt.Errorf("normalize: %w", ErrNoJSON)
	}

	var nulled []string
	for _, k := range RequiredKeys {
		if _, ok := m[k]; !ok {
			m[k] = nil
			nulled = append(nulled, k)
		}
	}

	scrubPlaceholders(m)
	normalizeDates(m)

	out, err := json.Marshal(m)
	if err != nil {
		return nil, nulled, fmt.Errorf("normalize: encode: %w", err)
	}
	if len(nulled) > 0 {
		logger.Warn("llm.normalize.missing_keys_nulled", "keys", nulled)
	}
	return out, nulled, nil
}

// placeholderValues are verbatim echoes of the prompt's field templates;
// the engine sometimes returns the template instead of an extracted value.
var placeholderValues = map[string]struct{}{
	"string":           {},
	"Genre1":           {},
	"Director name":    {},
	"Producer name":    {},
	"Primary language": {},
}

func isPlaceholder(s string) bool {
	if _, ok := placeholderValues[s]; ok {
		return true
	}
	return strings.Contains(s, "YYYY")
}

// scrubPlaceholders nulls map values and drops array elements that echo the
// prompt template instead of carrying extracted data.
func scrubPlaceholders(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, val := range node {
			if s, ok := val.(string); ok && isPlaceholder(s) {
				node[k] = nil
				continue
			}
			node[k] = scrubPlaceholders(val)
		}
		return node
	case []any:
		kept := node[:0]
		for _, item := range node {
			if s, ok := item.(string); ok && isPlaceholder(s) {
				continue
			}
			kept = append(kept, scrubPlaceholders(item))
		}
		return kept
	default:
		return v
	}
}

// dateLayouts accepted from the engine, tried in order. The first match
// wins; everything is rewritten to 2006-01-02.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// NormalizeDate rewrites a date string to YYYY-MM-DD when it matches a known
// layout; unrecognized values pass through untouched.
func NormalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// normalizeDates walks the document and rewrites every string value under a
// date-named key.
func normalizeDates(v any) {
	switch node := v.(type) {
	case map[string]any:
		for k, val := range node {
			if s, ok := val.(string); ok && isDateKey(k) {
				node[k] = NormalizeDate(s)
				continue
			}
			normalizeDates(val)
		}
	case []any:
		for _, item := range node {
			normalizeDates(item)
		}
	}
}

func isDateKey(k string) bool {
	lk := strings.ToLower(k)
	return lk == "date" || strings.HasSuffix(lk, "_date") || strings.HasSuffix(lk, "_deadline")
}
