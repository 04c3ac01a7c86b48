package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Generative models occasionally wrap valid JSON in explanatory prose or
// markdown fences, and occasionally emit trailing commas. Normalize recovers
// from exactly those defects and nothing more: aggressive repair risks
// corrupting string values that legitimately contain braces.

var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
)

// Normalize converts raw model output that nominally represents one JSON
// object into valid JSON bytes. Ordered attempts: fence extraction, parse
// as-is, minimal syntax repair, parse again. Output that parses on the first
// attempt is returned untouched. Failure returns a *ParseError; callers must
// never guess at partial structure.
func Normalize(raw string) (json.RawMessage, error) {
	candidate := extractFenced(raw)

	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	repaired := trailingCommaObject.ReplaceAllString(candidate, "}")
	repaired = trailingCommaArray.ReplaceAllString(repaired, "]")

	// Discard leading/trailing prose the model added despite instructions.
	first := strings.Index(repaired, "{")
	last := strings.LastIndex(repaired, "}")
	if first != -1 && last > first {
		repaired = repaired[first : last+1]
	}

	if json.Valid([]byte(repaired)) {
		return json.RawMessage(repaired), nil
	}

	var probe any
	return nil, newParseError(raw, json.Unmarshal([]byte(repaired), &probe))
}

// extractFenced returns the content of the first ```json fence, else the
// first untagged ``` fence, else the whole text trimmed.
func extractFenced(raw string) string {
	if _, after, ok := strings.Cut(raw, "```json"); ok {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
	}
	if _, after, ok := strings.Cut(raw, "```"); ok {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
	}
	return strings.TrimSpace(raw)
}

func newParseError(raw string, err error) *ParseError {
	preview := raw
	if len(preview) > rawPreviewLimit {
		preview = preview[:rawPreviewLimit]
	}
	return &ParseError{Raw: preview, Length: len(raw), Err: err}
}
