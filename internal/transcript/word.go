package transcript

import (
	"fmt"
	"strings"
)

// Word represents a single word of a diarized transcript as output by the
// external transcription service. SpeakerLabel is empty when diarization
// produced no label for the word.
type Word struct {
	Text         string  `json:"text"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	SpeakerLabel string  `json:"speaker_label,omitempty"`
}

// Validate checks if the Word has valid values
func (w *Word) Validate() error {
	if w.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if w.StartSeconds < 0 {
		return fmt.Errorf("start_seconds cannot be negative")
	}

	if w.EndSeconds < w.StartSeconds {
		return fmt.Errorf("end_seconds cannot be before start_seconds")
	}

	return nil
}

// NormalizedText returns the word text lower-cased with surrounding
// punctuation stripped, the form used for fuzzy text matching.
func (w *Word) NormalizedText() string {
	return NormalizeToken(w.Text)
}

// NormalizeToken lower-cases a token and trims leading/trailing punctuation
func NormalizeToken(token string) string {
	return strings.ToLower(strings.Trim(token, ".,!?;:'\"()[]{}"))
}

// JoinText reconstructs the plain text of a word sequence with single spaces
func JoinText(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// TotalDuration returns the end time of the last word, or 0 for an empty
// sequence. Words are ordered by start time by construction, so the last
// word carries the sequence's end.
func TotalDuration(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	return words[len(words)-1].EndSeconds
}

// HasSpeakerLabels reports whether any word in the sequence carries a
// diarization label.
func HasSpeakerLabels(words []Word) bool {
	for _, w := range words {
		if w.SpeakerLabel != "" {
			return true
		}
	}
	return false
}
