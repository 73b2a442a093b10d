package pipeline

import (
	"strings"

	"doorinsights/internal/transcript"
)

// leadInSeconds is subtracted from a matched word's start time when
// reporting an objection timestamp, so playback starts slightly before the
// objection for context
const leadInSeconds = 2.0

// AlignObjection locates an extracted objection quote inside the segment's
// word list and returns the playback timestamp for it.
//
// Matching is fuzzy in two tiers because the extraction service paraphrases
// punctuation and occasionally drops filler words: first a window of the
// quote's word count slides across the normalized segment words, accepting a
// substring-contains match in either direction; failing that, just the
// quote's first word is located anywhere in the segment. Both tiers apply
// the lead-in and the 0 floor. If neither matches, the segment's start time
// is returned.
func AlignObjection(words []transcript.Word, objectionText string, segmentStartSeconds float64) float64 {
	needle := normalizeWords(objectionText)
	if len(needle) == 0 || len(words) == 0 {
		return segmentStartSeconds
	}

	haystack := make([]string, len(words))
	for i, w := range words {
		haystack[i] = w.NormalizedText()
	}

	needleText := strings.Join(needle, " ")
	windowSize := len(needle)

	for i := 0; i+windowSize <= len(haystack); i++ {
		windowText := strings.Join(haystack[i:i+windowSize], " ")
		if strings.Contains(windowText, needleText) || strings.Contains(needleText, windowText) {
			return applyLeadIn(words[i].StartSeconds)
		}
	}

	// The full quote did not line up; anchor on its first word alone
	for i, token := range haystack {
		if token == needle[0] {
			return applyLeadIn(words[i].StartSeconds)
		}
	}

	return segmentStartSeconds
}

// applyLeadIn subtracts the lead-in from a word start, floored at 0
func applyLeadIn(startSeconds float64) float64 {
	aligned := startSeconds - leadInSeconds
	if aligned < 0 {
		return 0
	}
	return aligned
}

// normalizeWords splits free text into punctuation-stripped, lower-cased
// tokens, dropping any that normalize to nothing
func normalizeWords(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if token := transcript.NormalizeToken(f); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
