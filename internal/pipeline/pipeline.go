package pipeline

import (
	"context"

	"go.uber.org/zap"

	"doorinsights/internal/classifier"
	"doorinsights/internal/pii"
	"doorinsights/internal/segmenter"
	"doorinsights/internal/transcript"
)

// Stats summarizes one transcript's processing for logging and reporting
type Stats struct {
	WordCount      int `json:"word_count"`
	PIISpanCount   int `json:"pii_span_count"`
	SegmentCount   int `json:"segment_count"`
	RetainedCount  int `json:"retained_count"`
	ObjectionCount int `json:"objection_count"`
	DegradedCount  int `json:"degraded_count"`
}

// Pipeline sequences the engine against one transcript: PII detection over
// the whole word stream, conversation segmentation, then per-segment
// classification with objection timestamp alignment
type Pipeline struct {
	detector        *pii.Detector
	segmenter       *segmenter.Segmenter
	classifier      *classifier.Classifier
	keepAllSegments bool
	logger          *zap.Logger
}

// NewPipeline creates a new Pipeline from its three components
func NewPipeline(detector *pii.Detector, seg *segmenter.Segmenter, cls *classifier.Classifier) *Pipeline {
	return NewPipelineWithLogger(detector, seg, cls, false, nil)
}

// NewPipelineWithLogger creates a new Pipeline with the given components,
// drop policy, and logger. When keepAllSegments is false, segments with no
// objections and a non-sale category carry no actionable signal and are not
// persisted.
func NewPipelineWithLogger(detector *pii.Detector, seg *segmenter.Segmenter, cls *classifier.Classifier, keepAllSegments bool, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		detector:        detector,
		segmenter:       seg,
		classifier:      cls,
		keepAllSegments: keepAllSegments,
		logger:          logger,
	}
}

// Process analyzes one transcript end to end and returns the persisted
// conversation records. Segment classifications are issued sequentially, one
// at a time; a classification failure degrades that segment and never aborts
// the rest of the transcript. An empty word sequence yields an empty result.
func (p *Pipeline) Process(ctx context.Context, words []transcript.Word, repSpeaker string) ([]ConversationRecord, Stats) {
	stats := Stats{WordCount: len(words)}
	if len(words) == 0 {
		return []ConversationRecord{}, stats
	}

	spans := p.detector.Detect(words)
	spans = pii.ValidateAndClamp(spans, transcript.TotalDuration(words))
	stats.PIISpanCount = len(spans)

	segments := p.segmenter.Segment(words, repSpeaker)
	stats.SegmentCount = len(segments)

	records := []ConversationRecord{}
	for _, seg := range segments {
		record := p.analyzeSegment(ctx, seg, spans)

		stats.ObjectionCount += len(record.Objections)
		if !record.AnalysisCompleted {
			stats.DegradedCount++
		}

		if !p.keepAllSegments && len(record.Objections) == 0 && record.Category != classifier.CategorySale {
			p.logger.Debug("dropping conversation with no actionable signal",
				zap.Int("ordinal", seg.Ordinal),
				zap.String("category", string(record.Category)))
			continue
		}

		records = append(records, record)
	}
	stats.RetainedCount = len(records)

	p.logger.Info("transcript processing completed",
		zap.Int("word_count", stats.WordCount),
		zap.Int("pii_span_count", stats.PIISpanCount),
		zap.Int("segment_count", stats.SegmentCount),
		zap.Int("retained_count", stats.RetainedCount),
		zap.Int("objection_count", stats.ObjectionCount),
		zap.Int("degraded_count", stats.DegradedCount))

	return records, stats
}

// analyzeSegment classifies one segment and aligns its objections back onto
// the word timeline
func (p *Pipeline) analyzeSegment(ctx context.Context, seg segmenter.Segment, spans []pii.Span) ConversationRecord {
	overlapping := pii.CountOverlapping(spans, seg.StartSeconds, seg.EndSeconds)
	analysis := p.classifier.Classify(ctx, seg.Text(), overlapping)

	kinds := make([]classifier.ObjectionKind, 0, len(analysis.Objections))
	timed := make([]TimedObjection, 0, len(analysis.Objections))
	for _, objection := range analysis.Objections {
		kinds = append(kinds, objection.Kind)
		timed = append(timed, TimedObjection{
			Kind:             objection.Kind,
			Text:             objection.Text,
			TimestampSeconds: AlignObjection(seg.Words, objection.Text, seg.StartSeconds),
		})
	}

	return ConversationRecord{
		AnalysisID:        NewRecordID(),
		Ordinal:           seg.Ordinal,
		StartSeconds:      seg.StartSeconds,
		EndSeconds:        seg.EndSeconds,
		Speakers:          seg.Speakers,
		WordCount:         seg.WordCount,
		DurationSeconds:   seg.DurationSeconds,
		Category:          analysis.Category,
		ObjectionKinds:    kinds,
		Objections:        analysis.Objections,
		TimedObjections:   timed,
		HasPriceMention:   analysis.HasPriceMention,
		PIISpanCount:      analysis.PIISpanCount,
		AnalysisCompleted: analysis.Completed,
		AnalysisError:     analysis.ErrorReason,
	}
}
