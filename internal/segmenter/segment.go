package segmenter

import (
	"fmt"
	"sort"

	"doorinsights/internal/transcript"
)

// Segment represents one customer interaction at one door: a contiguous span
// of the recording with the words and distinct speakers it contains.
// Ordinals are dense (1..N) over the retained segments of a transcript.
type Segment struct {
	Ordinal         int               `json:"ordinal"`
	StartSeconds    float64           `json:"start_seconds"`
	EndSeconds      float64           `json:"end_seconds"`
	Speakers        []string          `json:"speakers"`
	Words           []transcript.Word `json:"words"`
	WordCount       int               `json:"word_count"`
	DurationSeconds float64           `json:"duration_seconds"`
}

// Text reconstructs the segment's plain text
func (s *Segment) Text() string {
	return transcript.JoinText(s.Words)
}

// Validate checks if the Segment has valid values
func (s *Segment) Validate() error {
	if s.Ordinal < 1 {
		return fmt.Errorf("ordinal must be at least 1")
	}

	if len(s.Words) == 0 {
		return fmt.Errorf("segment cannot be empty")
	}

	if s.EndSeconds < s.StartSeconds {
		return fmt.Errorf("end_seconds cannot be before start_seconds")
	}

	if s.WordCount != len(s.Words) {
		return fmt.Errorf("word_count does not match words")
	}

	return nil
}

// candidate is a raw conversation accumulated during the boundary scan,
// before filtering and renumbering
type candidate struct {
	words    []transcript.Word
	speakers map[string]bool
}

// addWord appends a word and records its speaker
func (c *candidate) addWord(word transcript.Word) {
	c.words = append(c.words, word)
	if word.SpeakerLabel != "" {
		c.speakers[word.SpeakerLabel] = true
	}
}

// hasSpoken reports whether the given speaker already spoke in this candidate
func (c *candidate) hasSpoken(speaker string) bool {
	return c.speakers[speaker]
}

// toSegment finalizes the candidate into a Segment with the given ordinal
func (c *candidate) toSegment(ordinal int) Segment {
	speakers := make([]string, 0, len(c.speakers))
	for speaker := range c.speakers {
		speakers = append(speakers, speaker)
	}
	sort.Strings(speakers)

	start := c.words[0].StartSeconds
	end := c.words[len(c.words)-1].EndSeconds

	return Segment{
		Ordinal:         ordinal,
		StartSeconds:    start,
		EndSeconds:      end,
		Speakers:        speakers,
		Words:           c.words,
		WordCount:       len(c.words),
		DurationSeconds: end - start,
	}
}
