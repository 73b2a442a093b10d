package pii

import "fmt"

// Span represents a timestamped region of the transcript flagged as
// containing sensitive personal information
type Span struct {
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	Label        Kind    `json:"label"`
}

// Validate checks if the Span has valid values
func (s *Span) Validate() error {
	if s.StartSeconds < 0 {
		return fmt.Errorf("start_seconds cannot be negative")
	}

	if s.EndSeconds <= s.StartSeconds {
		return fmt.Errorf("end_seconds must be greater than start_seconds")
	}

	if s.Label == "" {
		return fmt.Errorf("label cannot be empty")
	}

	return nil
}

// ValidateAndClamp drops spans that are malformed or start beyond the audio
// duration and clamps overrunning end times down to the duration. Downstream
// audio redaction cannot tolerate out-of-bounds ranges. A non-positive
// duration disables clamping and range checks rather than failing.
func ValidateAndClamp(spans []Span, totalDurationSeconds float64) []Span {
	valid := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.StartSeconds < 0 || span.EndSeconds < 0 || span.StartSeconds >= span.EndSeconds {
			continue
		}

		if totalDurationSeconds > 0 {
			if span.StartSeconds >= totalDurationSeconds {
				continue
			}
			if span.EndSeconds > totalDurationSeconds {
				span.EndSeconds = totalDurationSeconds
			}
		}

		valid = append(valid, span)
	}
	return valid
}

// CountOverlapping counts spans that overlap the [startSeconds, endSeconds)
// window. Used to compute per-conversation PII density for classification.
func CountOverlapping(spans []Span, startSeconds, endSeconds float64) int {
	count := 0
	for _, span := range spans {
		if span.StartSeconds < endSeconds && span.EndSeconds > startSeconds {
			count++
		}
	}
	return count
}
