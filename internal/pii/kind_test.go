package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy(t *testing.T) {
	t.Run("should enable every kind for the literal all", func(t *testing.T) {
		// Act
		set := ParsePolicy("all")

		// Assert
		for _, kind := range AllKinds {
			assert.True(t, set.Enabled(kind), "kind %s should be enabled", kind)
		}
	})

	t.Run("should enable every kind for an empty policy", func(t *testing.T) {
		// Act
		set := ParsePolicy("")

		// Assert
		assert.Len(t, set, len(AllKinds))
	})

	t.Run("should enable only explicitly named kinds", func(t *testing.T) {
		// Act
		set := ParsePolicy("phone,email")

		// Assert
		assert.True(t, set.Enabled(KindPhone))
		assert.True(t, set.Enabled(KindEmail))
		assert.False(t, set.Enabled(KindSSN))
		assert.False(t, set.Enabled(KindAddress))
		assert.False(t, set.Enabled(KindPersonName))
	})

	t.Run("should recognize the location synonym for address", func(t *testing.T) {
		// Act
		set := ParsePolicy("location")

		// Assert
		assert.True(t, set.Enabled(KindAddress))
	})

	t.Run("should recognize synonyms and tolerate spacing and case", func(t *testing.T) {
		// Act
		set := ParsePolicy(" Name , CreditCard , Social_Security ")

		// Assert
		assert.True(t, set.Enabled(KindPersonName))
		assert.True(t, set.Enabled(KindCreditCard))
		assert.True(t, set.Enabled(KindSSN))
	})

	t.Run("should ignore unknown kind names", func(t *testing.T) {
		// Act
		set := ParsePolicy("phone,passport")

		// Assert
		assert.True(t, set.Enabled(KindPhone))
		assert.Len(t, set, 1)
	})
}
