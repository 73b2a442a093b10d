package segmenter

import (
	"go.uber.org/zap"

	"doorinsights/internal/transcript"
)

// Default boundary thresholds. A gap above LargeGap means the rep walked to
// a new door; a gap above SmallGap splits only when a genuinely new customer
// voice appears. Candidates shorter than MinDuration or with fewer than two
// distinct speakers are rep monologue or noise and are filtered out.
const (
	DefaultMinDurationSeconds = 20.0
	DefaultSmallGapSeconds    = 3.0
	DefaultLargeGapSeconds    = 30.0
	DefaultSilenceGapSeconds  = 30.0
)

// Thresholds carries the segmentation tuning knobs
type Thresholds struct {
	MinDurationSeconds float64
	SmallGapSeconds    float64
	LargeGapSeconds    float64
	SilenceGapSeconds  float64
}

// DefaultThresholds returns the production threshold values
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDurationSeconds: DefaultMinDurationSeconds,
		SmallGapSeconds:    DefaultSmallGapSeconds,
		LargeGapSeconds:    DefaultLargeGapSeconds,
		SilenceGapSeconds:  DefaultSilenceGapSeconds,
	}
}

// Segmenter partitions a continuous recording's word sequence into ordered,
// non-overlapping conversation segments
type Segmenter struct {
	thresholds Thresholds
	logger     *zap.Logger
}

// NewSegmenter creates a new Segmenter with default thresholds
func NewSegmenter() *Segmenter {
	return NewSegmenterWithLogger(DefaultThresholds(), nil)
}

// NewSegmenterWithLogger creates a new Segmenter with the given thresholds and logger
func NewSegmenterWithLogger(thresholds Thresholds, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Segmenter{
		thresholds: thresholds,
		logger:     logger,
	}
}

// Segment partitions the word sequence into conversation segments using
// speaker-turn and silence-gap heuristics. repSpeaker is the diarization
// label of the sales rep. Segmentation is total: an empty input yields an
// empty result and there is no error path.
func (s *Segmenter) Segment(words []transcript.Word, repSpeaker string) []Segment {
	if len(words) == 0 {
		return []Segment{}
	}

	if !transcript.HasSpeakerLabels(words) {
		s.logger.Info("no speaker labels present, using silence-only segmentation",
			zap.Int("word_count", len(words)))
		return s.segmentBySilence(words)
	}

	candidates := s.collectCandidates(words, repSpeaker)

	// Diarization that produces a single undivided conversation is treated
	// as failed; long dead air still demarcates separate doors.
	if len(candidates) <= 1 {
		s.logger.Info("speaker segmentation yielded at most one conversation, falling back to silence-only",
			zap.Int("candidate_count", len(candidates)))
		return s.segmentBySilence(words)
	}

	segments := s.filterAndRenumber(candidates)

	s.logger.Info("segmentation completed",
		zap.Int("word_count", len(words)),
		zap.Int("candidate_count", len(candidates)),
		zap.Int("retained_count", len(segments)))

	return segments
}

// collectCandidates runs the per-word boundary rule and returns the raw
// chronological conversation candidates
func (s *Segmenter) collectCandidates(words []transcript.Word, repSpeaker string) []*candidate {
	var candidates []*candidate
	current := newCandidate()

	var lastEnd float64
	for i, word := range words {
		if word.Text == "" {
			continue
		}

		if len(current.words) > 0 {
			gap := word.StartSeconds - lastEnd
			if s.isBoundary(gap, word.SpeakerLabel, repSpeaker, current) {
				s.logger.Debug("conversation boundary",
					zap.Int("word_index", i),
					zap.Float64("gap_seconds", gap),
					zap.String("speaker", word.SpeakerLabel))
				candidates = append(candidates, current)
				current = newCandidate()
			}
		}

		current.addWord(word)
		lastEnd = word.EndSeconds
	}

	if len(current.words) > 0 {
		candidates = append(candidates, current)
	}

	return candidates
}

// isBoundary decides whether a word opens a new conversation given the gap
// since the previous word's end
func (s *Segmenter) isBoundary(gap float64, speaker, repSpeaker string, current *candidate) bool {
	// The rep physically walked to a new door
	if gap > s.thresholds.LargeGapSeconds {
		return true
	}

	// A medium pause followed by a voice that is neither the rep nor anyone
	// already in the conversation is a new customer at a new door. A spouse
	// joining mid-conversation or the same customer resuming does not split.
	if gap > s.thresholds.SmallGapSeconds {
		if speaker != "" && speaker != repSpeaker && !current.hasSpoken(speaker) {
			return true
		}
	}

	return false
}

// filterAndRenumber drops candidates that are too short or single-voiced and
// assigns dense ordinals to the survivors in chronological order
func (s *Segmenter) filterAndRenumber(candidates []*candidate) []Segment {
	segments := []Segment{}
	for _, c := range candidates {
		seg := c.toSegment(len(segments) + 1)

		if seg.DurationSeconds < s.thresholds.MinDurationSeconds {
			s.logger.Debug("dropping short candidate",
				zap.Float64("duration_seconds", seg.DurationSeconds))
			continue
		}
		if len(seg.Speakers) < 2 {
			s.logger.Debug("dropping single-speaker candidate",
				zap.Int("speaker_count", len(seg.Speakers)))
			continue
		}

		segments = append(segments, seg)
	}
	return segments
}

// segmentBySilence splits purely on inter-word gaps above the silence
// threshold, with no speaker or duration filtering. Used when diarization is
// absent or produced nothing usable.
func (s *Segmenter) segmentBySilence(words []transcript.Word) []Segment {
	segments := []Segment{}
	current := newCandidate()

	var lastEnd float64
	for _, word := range words {
		if word.Text == "" {
			continue
		}

		if len(current.words) > 0 && word.StartSeconds-lastEnd > s.thresholds.SilenceGapSeconds {
			segments = append(segments, current.toSegment(len(segments)+1))
			current = newCandidate()
		}

		current.addWord(word)
		lastEnd = word.EndSeconds
	}

	if len(current.words) > 0 {
		segments = append(segments, current.toSegment(len(segments)+1))
	}

	return segments
}

// newCandidate creates an empty conversation candidate
func newCandidate() *candidate {
	return &candidate{speakers: make(map[string]bool)}
}
