package classifier

import (
	"context"

	"go.uber.org/zap"
)

// Classifier assigns a business category to one conversation segment and
// extracts the customer objections it contains
type Classifier struct {
	extractor ObjectionExtractor
	logger    *zap.Logger
}

// NewClassifier creates a new Classifier with the given extractor
func NewClassifier(extractor ObjectionExtractor) *Classifier {
	return NewClassifierWithLogger(extractor, nil)
}

// NewClassifierWithLogger creates a new Classifier with the given extractor and logger
func NewClassifierWithLogger(extractor ObjectionExtractor, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		extractor: extractor,
		logger:    logger,
	}
}

// Classify produces the analysis for one segment's text given the count of
// PII spans overlapping the segment. An extraction failure never propagates:
// the analysis degrades to zero objections with Completed=false and the
// failure recorded in ErrorReason.
func (c *Classifier) Classify(ctx context.Context, segmentText string, overlappingPIICount int) Analysis {
	if segmentText == "" {
		return Analysis{
			Category:     CategoryUncategorized,
			Objections:   []Objection{},
			PIISpanCount: overlappingPIICount,
			Completed:    true,
		}
	}

	hasPrice := DetectPriceMention(segmentText)
	category := Categorize(hasPrice, overlappingPIICount)

	analysis := Analysis{
		Category:        category,
		Objections:      []Objection{},
		HasPriceMention: hasPrice,
		PIISpanCount:    overlappingPIICount,
		Completed:       true,
	}

	objections, err := c.extractor.Extract(ctx, segmentText)
	if err != nil {
		c.logger.Warn("objection extraction degraded to empty result",
			zap.Error(err),
			zap.String("category", string(category)))
		analysis.Completed = false
		analysis.ErrorReason = err.Error()
		return analysis
	}

	analysis.Objections = objections

	c.logger.Debug("segment classified",
		zap.String("category", string(category)),
		zap.Bool("has_price_mention", hasPrice),
		zap.Int("pii_span_count", overlappingPIICount),
		zap.Int("objection_count", len(objections)))

	return analysis
}
