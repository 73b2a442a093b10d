package classifier

import "strings"

// priceLexicon is the fixed set of price-talk markers. Any case-insensitive
// substring hit flags the conversation as a price discussion.
var priceLexicon = []string{
	"$",
	"dollar",
	"price",
	"cost",
	"fee",
	"payment",
	"per month",
	"monthly",
	"annual",
	"yearly",
	"subscription",
	"charge",
	"expensive",
	"cheap",
	"afford",
	"budget",
}

// saleMinPIISpans is the PII density above which a price discussion is
// treated as a closed sale: three or more redactions in one conversation is
// a strong proxy for a payment-card capture.
const saleMinPIISpans = 3

// DetectPriceMention reports whether the segment text contains any marker
// from the price lexicon
func DetectPriceMention(segmentText string) bool {
	lower := strings.ToLower(segmentText)
	for _, marker := range priceLexicon {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Categorize assigns the business category from the price flag and the
// count of PII spans overlapping the conversation. The rules are mutually
// exclusive and ordered, so no tie is possible.
func Categorize(hasPriceMention bool, overlappingPIICount int) Category {
	if !hasPriceMention {
		return CategoryInteraction
	}
	if overlappingPIICount >= saleMinPIISpans {
		return CategorySale
	}
	return CategoryPitch
}
