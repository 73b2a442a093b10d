package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"doorinsights/internal/classifier"
)

// TimedObjection is an objection with its resolved playback timestamp
type TimedObjection struct {
	Kind             classifier.ObjectionKind `json:"kind"`
	Text             string                   `json:"text"`
	TimestampSeconds float64                  `json:"timestamp_seconds"`
}

// ConversationRecord is the persisted analysis for one retained
// conversation. Its shape is a stable contract read by external dashboards:
// the three objection projections (kind list, kind+text list, kind+text+
// timestamp list) are all kept.
type ConversationRecord struct {
	AnalysisID        string                     `json:"analysis_id"`
	Ordinal           int                        `json:"ordinal"`
	StartSeconds      float64                    `json:"start_seconds"`
	EndSeconds        float64                    `json:"end_seconds"`
	Speakers          []string                   `json:"speakers"`
	WordCount         int                        `json:"word_count"`
	DurationSeconds   float64                    `json:"duration_seconds"`
	Category          classifier.Category        `json:"category"`
	ObjectionKinds    []classifier.ObjectionKind `json:"objection_kinds"`
	Objections        []classifier.Objection     `json:"objections"`
	TimedObjections   []TimedObjection           `json:"timed_objections"`
	HasPriceMention   bool                       `json:"has_price_mention"`
	PIISpanCount      int                        `json:"pii_span_count"`
	AnalysisCompleted bool                       `json:"analysis_completed"`
	AnalysisError     string                     `json:"analysis_error,omitempty"`
}

// NewRecordID generates a unique analysis record identifier
func NewRecordID() string {
	return uuid.NewString()
}

// Validate checks if the ConversationRecord has valid values
func (r *ConversationRecord) Validate() error {
	if r.AnalysisID == "" {
		return fmt.Errorf("analysis_id cannot be empty")
	}

	if r.Ordinal < 1 {
		return fmt.Errorf("ordinal must be at least 1")
	}

	if r.EndSeconds < r.StartSeconds {
		return fmt.Errorf("end_seconds cannot be before start_seconds")
	}

	if r.Category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	if len(r.ObjectionKinds) != len(r.Objections) || len(r.Objections) != len(r.TimedObjections) {
		return fmt.Errorf("objection projections must have equal length")
	}

	return nil
}
