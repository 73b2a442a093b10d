package pii

import (
	"regexp"
	"strconv"
	"strings"

	"doorinsights/internal/transcript"
)

// Window scan bounds. Each multi-word pass grows a window from a start index
// and abandons it early once the accumulated text can no longer match.
const (
	phoneWindowMaxWords = 6
	phoneWindowMaxChars = 30

	cardWindowMaxWords  = 12
	cardWindowMaxChars  = 50
	cardWindowMaxGroups = 5

	addressWindowMaxWords = 6
)

var (
	multiPhoneRegex = regexp.MustCompile(`(?:\+?1[-.\s]?)?(?:\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)
	multiCardRegex  = regexp.MustCompile(`\b\d{4}-?\d{4}-?\d{4}-?\d{4}\b`)

	digitGroupRegex = regexp.MustCompile(`^\d{3,4}$`)

	// Street shape: house number plus a capitalized street name with an
	// optional suffix word. The numeric start-word filter carries the false
	// positive burden, so the suffix stays optional.
	streetShapeRegex = regexp.MustCompile(`^\d{1,5}\s+[A-Z][a-z]{2,}(?:\s+[A-Za-z]+)*?\s*(?i:st|street|ave|avenue|rd|road|dr|drive|ln|lane|blvd|boulevard|ct|court|way|pl|place|ter|terrace|cir|circle)?\.?,?$`)
	cityStateRegex   = regexp.MustCompile(`[A-Z][A-Za-z]+,\s*[A-Z]{2}(?:\s+\d{5})?$`)
)

// windowMatch describes a successful multi-word match: the index of the last
// word consumed, so the caller can advance the outer scan past the window.
type windowMatch struct {
	lastIndex int
}

// matchPhoneWindow grows a window of at most 6 words from startIndex,
// re-testing the phone shape after each word. Returns false once the
// accumulated text exceeds 30 characters without matching.
func matchPhoneWindow(words []transcript.Word, startIndex int) (windowMatch, bool) {
	var accumulated strings.Builder

	for i := startIndex; i < len(words) && i < startIndex+phoneWindowMaxWords; i++ {
		if accumulated.Len() > 0 {
			accumulated.WriteByte(' ')
		}
		accumulated.WriteString(words[i].Text)

		if multiPhoneRegex.MatchString(accumulated.String()) {
			return windowMatch{lastIndex: i}, true
		}

		if accumulated.Len() > phoneWindowMaxChars {
			return windowMatch{}, false
		}
	}

	return windowMatch{}, false
}

// matchCardWindow grows a window of at most 12 words from startIndex,
// accumulating digit groups of length 3-4. A match is either the full card
// regex over the accumulated text or exactly 4 groups of 4 digits whose
// first group starts with a valid issuer digit.
func matchCardWindow(words []transcript.Word, startIndex int) (windowMatch, bool) {
	var accumulated strings.Builder
	var digitGroups []string

	for i := startIndex; i < len(words) && i < startIndex+cardWindowMaxWords; i++ {
		text := strings.Trim(words[i].Text, ".,")
		if accumulated.Len() > 0 {
			accumulated.WriteByte(' ')
		}
		accumulated.WriteString(text)

		if digitGroupRegex.MatchString(text) {
			digitGroups = append(digitGroups, text)
		}

		if multiCardRegex.MatchString(accumulated.String()) {
			return windowMatch{lastIndex: i}, true
		}
		if isCardGroupSequence(digitGroups) {
			return windowMatch{lastIndex: i}, true
		}

		if accumulated.Len() > cardWindowMaxChars || len(digitGroups) > cardWindowMaxGroups {
			return windowMatch{}, false
		}
	}

	return windowMatch{}, false
}

// isCardGroupSequence reports whether the digit groups form a spoken card
// number: exactly 4 groups of 4 digits led by a valid issuer digit
func isCardGroupSequence(groups []string) bool {
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		if len(group) != 4 {
			return false
		}
	}
	switch groups[0][0] {
	case '4', '5', '3', '6':
		return true
	}
	return false
}

// matchAddressWindow grows a window of at most 6 words from startIndex and
// tests both a street-suffix shape and a "City, ST [ZIP]" shape. The caller
// only starts windows at plausible house numbers.
func matchAddressWindow(words []transcript.Word, startIndex int) (windowMatch, bool) {
	var accumulated strings.Builder

	for i := startIndex; i < len(words) && i < startIndex+addressWindowMaxWords; i++ {
		if accumulated.Len() > 0 {
			accumulated.WriteByte(' ')
		}
		accumulated.WriteString(words[i].Text)

		// A lone house number is not an address yet
		if i == startIndex {
			continue
		}

		text := accumulated.String()
		if streetShapeRegex.MatchString(text) || cityStateRegex.MatchString(text) {
			return windowMatch{lastIndex: i}, true
		}
	}

	return windowMatch{}, false
}

// isAddressStartWord reports whether a word can open an address window: a
// purely numeric token that is not year-shaped (1900-2099) and not larger
// than 99999. Filters street-number false positives from dates and counts.
func isAddressStartWord(text string) bool {
	value, err := strconv.Atoi(strings.TrimSuffix(text, ","))
	if err != nil {
		return false
	}
	if value >= 1900 && value <= 2099 {
		return false
	}
	if value < 0 || value > 99999 {
		return false
	}
	return true
}
