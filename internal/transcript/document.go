package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the inbound word-level transcript contract: the ordered word
// sequence produced by the transcription service plus the redaction policy
// governing which PII kinds are detected. RedactionPolicy is either the
// literal "all" or a comma-separated list of kind names.
type Document struct {
	Words           []Word `json:"words"`
	RedactionPolicy string `json:"redaction_policy,omitempty"`
	RepSpeaker      string `json:"rep_speaker,omitempty"`
}

// Parse decodes a transcript document from JSON
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode transcript document: %w", err)
	}

	return &doc, nil
}

// LoadFromFile reads and decodes a transcript document from disk
func LoadFromFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript file %s: %w", path, err)
	}

	return doc, nil
}

// Validate checks the document's word sequence for ordering violations.
// Empty documents are valid; the engine treats them as trivially empty input.
func (d *Document) Validate() error {
	var lastStart float64
	for i := range d.Words {
		if err := d.Words[i].Validate(); err != nil {
			return fmt.Errorf("word %d invalid: %w", i, err)
		}
		if d.Words[i].StartSeconds < lastStart {
			return fmt.Errorf("word %d out of order: start %.3f before previous start %.3f",
				i, d.Words[i].StartSeconds, lastStart)
		}
		lastStart = d.Words[i].StartSeconds
	}

	return nil
}
