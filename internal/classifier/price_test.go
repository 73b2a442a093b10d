package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPriceMention(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"dollar sign", "that comes to $49 even", true},
		{"per month phrase", "it is only twenty per month", true},
		{"case insensitive lexicon hit", "the PRICE is locked in", true},
		{"affordability talk", "we can't afford that right now", true},
		{"subscription talk", "cancel the subscription anytime", true},
		{"no price talk", "we treat the perimeter and the eaves", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPriceMention(tt.text))
		})
	}
}

func TestCategorize(t *testing.T) {
	t.Run("should assign interaction without a price mention regardless of pii", func(t *testing.T) {
		assert.Equal(t, CategoryInteraction, Categorize(false, 0))
		assert.Equal(t, CategoryInteraction, Categorize(false, 10))
	})

	t.Run("should assign sale for a price mention with 3 or more pii spans", func(t *testing.T) {
		assert.Equal(t, CategorySale, Categorize(true, 3))
		assert.Equal(t, CategorySale, Categorize(true, 7))
	})

	t.Run("should assign pitch for a price mention with fewer than 3 pii spans", func(t *testing.T) {
		assert.Equal(t, CategoryPitch, Categorize(true, 2))
		assert.Equal(t, CategoryPitch, Categorize(true, 0))
	})
}
