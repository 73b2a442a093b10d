package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doorinsights/internal/transcript"
)

// makeWords builds a word sequence with half-second words starting at t=0
func makeWords(texts ...string) []transcript.Word {
	words := make([]transcript.Word, len(texts))
	for i, text := range texts {
		words[i] = transcript.Word{
			Text:         text,
			StartSeconds: float64(i) * 0.5,
			EndSeconds:   float64(i)*0.5 + 0.4,
		}
	}
	return words
}

func TestMatchPhoneWindow(t *testing.T) {
	t.Run("should match spoken digit groups", func(t *testing.T) {
		// Arrange
		words := makeWords("555", "123", "4567")

		// Act
		match, ok := matchPhoneWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 2, match.lastIndex)
	})

	t.Run("should match a number with area code in parentheses", func(t *testing.T) {
		// Arrange
		words := makeWords("(555)", "123-4567")

		// Act
		match, ok := matchPhoneWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 1, match.lastIndex)
	})

	t.Run("should abandon the window once accumulated text is too long", func(t *testing.T) {
		// Arrange
		words := makeWords("absolutely", "definitely", "wonderful", "555", "123", "4567")

		// Act
		_, ok := matchPhoneWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should not match plain conversation", func(t *testing.T) {
		// Arrange
		words := makeWords("we", "can", "start", "next", "week")

		// Act
		_, ok := matchPhoneWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})
}

func TestMatchCardWindow(t *testing.T) {
	t.Run("should match four digit groups with a valid issuer digit", func(t *testing.T) {
		// Arrange
		words := makeWords("4111", "1111", "1111", "1111")

		// Act
		match, ok := matchCardWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 3, match.lastIndex)
	})

	t.Run("should reject four digit groups with an invalid issuer digit", func(t *testing.T) {
		// Arrange
		words := makeWords("1234", "5678", "9012", "3456")

		// Act
		_, ok := matchCardWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should reject groups of three digits", func(t *testing.T) {
		// Arrange
		words := makeWords("411", "111", "111", "1111")

		// Act
		_, ok := matchCardWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should abandon the window after too many digit groups", func(t *testing.T) {
		// Arrange
		words := makeWords("123", "456", "789", "012", "345", "678", "4111", "1111", "1111", "1111")

		// Act
		_, ok := matchCardWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})

	t.Run("should match a dashed card number read in one breath", func(t *testing.T) {
		// Arrange
		words := makeWords("4111-1111-1111-1111")

		// Act
		match, ok := matchCardWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 0, match.lastIndex)
	})
}

func TestMatchAddressWindow(t *testing.T) {
	t.Run("should match a house number with a street name", func(t *testing.T) {
		// Arrange
		words := makeWords("742", "Evergreen", "Terrace")

		// Act
		match, ok := matchAddressWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 1, match.lastIndex)
	})

	t.Run("should match a city-state-zip shape", func(t *testing.T) {
		// Arrange
		words := makeWords("55", "minutes", "from", "Dallas,", "TX")

		// Act
		match, ok := matchAddressWindow(words, 0)

		// Assert
		require.True(t, ok)
		assert.Equal(t, 4, match.lastIndex)
	})

	t.Run("should not match a lone number", func(t *testing.T) {
		// Arrange
		words := makeWords("742")

		// Act
		_, ok := matchAddressWindow(words, 0)

		// Assert
		assert.False(t, ok)
	})
}

func TestIsAddressStartWord(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"742", true},
		{"1", true},
		{"99999", true},
		{"2024", false},
		{"1900", false},
		{"2099", false},
		{"1899", true},
		{"2100", true},
		{"123456", false},
		{"Main", false},
		{"74a", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, isAddressStartWord(tt.text))
		})
	}
}
