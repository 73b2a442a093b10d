package pii

import (
	"regexp"
	"unicode"

	"go.uber.org/zap"

	"doorinsights/internal/transcript"
)

// singleWordRule pairs a PII kind with its value-shape predicate. Rules are
// evaluated in priority order, first match wins, so a word never carries
// more than one label.
type singleWordRule struct {
	kind  Kind
	regex *regexp.Regexp
}

// Detector scans a word sequence and emits timestamped PII spans using
// single-word and multi-word sliding-window matching
type Detector struct {
	enabled KindSet
	rules   []singleWordRule
	logger  *zap.Logger
}

// NewDetector creates a new Detector for the given enabled kinds
func NewDetector(enabled KindSet) *Detector {
	return NewDetectorWithLogger(enabled, nil)
}

// NewDetectorWithLogger creates a new Detector with the given enabled kinds and logger
func NewDetectorWithLogger(enabled KindSet, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if enabled == nil {
		enabled = AllEnabled()
	}

	return &Detector{
		enabled: enabled,
		logger:  logger,
		rules: []singleWordRule{
			{KindEmail, regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
			{KindPhone, regexp.MustCompile(`(?:\+?1[-.]?)?\(?\d{3}\)?[-.]\d{3}[-.]?\d{4}`)},
			{KindSSN, regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
			{KindCreditCard, regexp.MustCompile(`\b\d{4}[-]?\d{4}[-]?\d{4}[-]?\d{4}\b`)},
			{KindURL, regexp.MustCompile(`(?i)(?:https?://|www\.)\S+|\b[a-z0-9-]+\.(?:com|org|net|io|gov|edu)\b`)},
			{KindAddress, regexp.MustCompile(`(?i)^\d{1,5}\s+\w+\s+(?:st|street|ave|avenue|rd|road|dr|drive|ln|lane|blvd|boulevard|ct|court|way|pl|place)\.?$`)},
		},
	}
}

// Detect scans the word sequence and returns every span of enabled kinds.
// Spans are appended in detection order, not time order; callers needing a
// time-ordered list must sort explicitly. Malformed words are skipped, and
// detection never fails.
func (d *Detector) Detect(words []transcript.Word) []Span {
	if len(words) == 0 {
		return []Span{}
	}

	spans := d.detectSingleWord(words)

	if d.enabled.Enabled(KindPersonName) {
		spans = append(spans, d.detectNames(words)...)
	}
	if d.enabled.Enabled(KindPhone) {
		spans = append(spans, d.detectWindows(words, KindPhone, matchPhoneWindow)...)
	}
	if d.enabled.Enabled(KindCreditCard) {
		spans = append(spans, d.detectWindows(words, KindCreditCard, matchCardWindow)...)
	}
	if d.enabled.Enabled(KindAddress) {
		spans = append(spans, d.detectAddresses(words)...)
	}

	d.logger.Debug("pii detection completed",
		zap.Int("word_count", len(words)),
		zap.Int("span_count", len(spans)))

	return spans
}

// detectSingleWord runs the ordered value-shape rules over each word
func (d *Detector) detectSingleWord(words []transcript.Word) []Span {
	spans := []Span{}
	for _, word := range words {
		if word.Text == "" {
			continue
		}
		for _, rule := range d.rules {
			if !d.enabled.Enabled(rule.kind) {
				continue
			}
			if rule.regex.MatchString(word.Text) {
				spans = append(spans, Span{
					StartSeconds: word.StartSeconds,
					EndSeconds:   word.EndSeconds,
					Label:        rule.kind,
				})
				d.logger.Debug("single-word pii match",
					zap.String("kind", string(rule.kind)),
					zap.Float64("start_seconds", word.StartSeconds))
				break
			}
		}
	}
	return spans
}

// detectNames scans consecutive word pairs for capitalized full names. The
// scan index advances past a matched pair so an overlapping triple is not
// read as two separate names.
func (d *Detector) detectNames(words []transcript.Word) []Span {
	var spans []Span
	for i := 0; i+1 < len(words); i++ {
		if isNameWord(words[i].Text) && isNameWord(words[i+1].Text) {
			spans = append(spans, Span{
				StartSeconds: words[i].StartSeconds,
				EndSeconds:   words[i+1].EndSeconds,
				Label:        KindPersonName,
			})
			d.logger.Debug("name pair match",
				zap.String("first", words[i].Text),
				zap.String("second", words[i+1].Text))
			i++
		}
	}
	return spans
}

// isNameWord reports whether a word looks like part of a full name:
// capitalized, alphabetic, and at least 3 letters
func isNameWord(text string) bool {
	runes := []rune(text)
	if len(runes) < 3 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// detectWindows runs a bounded multi-word window scan from each start index,
// advancing the outer index past any matched window
func (d *Detector) detectWindows(words []transcript.Word, kind Kind, match func([]transcript.Word, int) (windowMatch, bool)) []Span {
	var spans []Span
	for i := 0; i < len(words); i++ {
		result, ok := match(words, i)
		if !ok {
			continue
		}
		spans = append(spans, Span{
			StartSeconds: words[i].StartSeconds,
			EndSeconds:   words[result.lastIndex].EndSeconds,
			Label:        kind,
		})
		d.logger.Debug("multi-word pii match",
			zap.String("kind", string(kind)),
			zap.Int("window_start", i),
			zap.Int("window_end", result.lastIndex))
		i = result.lastIndex
	}
	return spans
}

// detectAddresses runs the address window scan, only opening windows at
// plausible house numbers
func (d *Detector) detectAddresses(words []transcript.Word) []Span {
	var spans []Span
	for i := 0; i < len(words); i++ {
		if !isAddressStartWord(words[i].Text) {
			continue
		}
		result, ok := matchAddressWindow(words, i)
		if !ok {
			continue
		}
		spans = append(spans, Span{
			StartSeconds: words[i].StartSeconds,
			EndSeconds:   words[result.lastIndex].EndSeconds,
			Label:        KindAddress,
		})
		d.logger.Debug("address match",
			zap.Int("window_start", i),
			zap.Int("window_end", result.lastIndex))
		i = result.lastIndex
	}
	return spans
}
