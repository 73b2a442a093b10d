package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ObjectionExtractor asks an external text-classification service for the
// customer objections voiced in one conversation. Implementations return an
// error rather than panicking so the caller can degrade per segment.
type ObjectionExtractor interface {
	Extract(ctx context.Context, segmentText string) ([]Objection, error)
}

// objectionPayload is the wire shape the extraction service is asked to
// return inside its free-form response
type objectionPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ParseObjectionResponse defensively parses the extraction service's
// free-form response: it locates the first well-formed JSON array literal,
// decodes it, and discards entries whose type is not in the fixed
// enumeration or whose quote is empty. The service contract is best-effort
// structured extraction, so surrounding prose and markdown fences are
// tolerated; only the complete absence of a parseable array is an error.
func ParseObjectionResponse(response string) ([]Objection, error) {
	raw := extractArrayLiteral(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array found in extraction response")
	}

	var payloads []objectionPayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		return nil, fmt.Errorf("failed to decode objection array: %w", err)
	}

	objections := []Objection{}
	for _, p := range payloads {
		if !IsValidObjectionKind(p.Type) {
			continue
		}
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		objections = append(objections, Objection{
			Kind: ObjectionKind(p.Type),
			Text: strings.TrimSpace(p.Text),
		})
	}

	return objections, nil
}

// extractArrayLiteral finds the first balanced JSON array in a string,
// stripping common markdown fences first
func extractArrayLiteral(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, fence := range []string{"```json", "```", "`"} {
		s = strings.ReplaceAll(s, fence, "")
	}

	start := strings.Index(s, "[")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}

	return ""
}

// MockExtractor returns a deterministic objection list for offline demos
// and tests, keyed off simple substring checks against the segment text
type MockExtractor struct{}

// Extract implements ObjectionExtractor
func (m *MockExtractor) Extract(_ context.Context, segmentText string) ([]Objection, error) {
	lower := strings.ToLower(segmentText)
	objections := []Objection{}

	if strings.Contains(lower, "wife") || strings.Contains(lower, "husband") || strings.Contains(lower, "spouse") {
		objections = append(objections, Objection{Kind: ObjectionSpouse, Text: "ask my wife"})
	}
	if strings.Contains(lower, "expensive") || strings.Contains(lower, "too much") {
		objections = append(objections, Objection{Kind: ObjectionPrice, Text: "that is too expensive"})
	}
	if strings.Contains(lower, "not interested") {
		objections = append(objections, Objection{Kind: ObjectionNotInterested, Text: "I am not interested"})
	}

	return objections, nil
}
