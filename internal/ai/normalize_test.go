package ai

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeFirstSuccessIsUntouched(t *testing.T) {
	// Already-valid JSON must be returned byte-for-byte, even when the
	// repair pass would also have succeeded.
	raw := `{"a": [1, 2], "b": {"c": "text with } brace"}}`

	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if string(got) != raw {
		t.Fatalf("Normalize() modified valid input:\n got:  %s\n want: %s", got, raw)
	}
}

func TestNormalizeFencedBlocks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "json-tagged fence with surrounding prose",
			raw:  "Here is your itinerary:\n```json\n{\"day\": 1}\n```\nEnjoy!",
			want: map[string]any{"day": float64(1)},
		},
		{
			name: "untagged fence",
			raw:  "```\n{\"day\": 2}\n```",
			want: map[string]any{"day": float64(2)},
		},
		{
			name: "json-tagged fence preferred over untagged content",
			raw:  "```json\n{\"tagged\": true}\n```",
			want: map[string]any{"tagged": true},
		},
		{
			name: "no fence, trimmed whole text",
			raw:  "  \n {\"plain\": \"yes\"} \n",
			want: map[string]any{"plain": "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(cleaned, &got); err != nil {
				t.Fatalf("unmarshal normalized output: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRepairsTrailingCommas(t *testing.T) {
	raw := `{"items": [1, 2, 3,], "total": 3,}`

	cleaned, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	var got struct {
		Items []int `json:"items"`
		Total int   `json:"total"`
	}
	if err := json.Unmarshal(cleaned, &got); err != nil {
		t.Fatalf("unmarshal repaired output: %v", err)
	}
	if got.Total != 3 || len(got.Items) != 3 {
		t.Fatalf("repaired structure mismatch: %+v", got)
	}
}

func TestNormalizeSlicesSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the plan: {"city": "Kyoto"} Hope this helps.`

	cleaned, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if string(cleaned) != `{"city": "Kyoto"}` {
		t.Fatalf("Normalize() = %s", cleaned)
	}
}

func TestNormalizeUnrecoverable(t *testing.T) {
	// Truncated mid-object, the known failure mode when the token budget
	// runs out on long trips.
	raw := `{"daily_itinerary": [{"day": 1, "title": "Arri`

	_, err := Normalize(raw)
	if err == nil {
		t.Fatal("Normalize() expected error for truncated JSON")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Length != len(raw) {
		t.Fatalf("ParseError.Length = %d, want %d", pe.Length, len(raw))
	}
	if pe.Raw != raw {
		t.Fatalf("ParseError.Raw does not carry original text")
	}
}

func TestNormalizeParseErrorPreviewCap(t *testing.T) {
	raw := "not json at all " + strings.Repeat("x", rawPreviewLimit)

	_, err := Normalize(raw)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if len(pe.Raw) != rawPreviewLimit {
		t.Fatalf("preview length = %d, want %d", len(pe.Raw), rawPreviewLimit)
	}
	if pe.Length != len(raw) {
		t.Fatalf("ParseError.Length = %d, want %d", pe.Length, len(raw))
	}
}
