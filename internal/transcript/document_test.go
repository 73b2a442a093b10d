package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should decode a transcript document", func(t *testing.T) {
		// Arrange
		input := `{
			"words": [
				{"text": "hello", "start_seconds": 0.0, "end_seconds": 0.4, "speaker_label": "spk_0"},
				{"text": "there", "start_seconds": 0.4, "end_seconds": 0.8, "speaker_label": "spk_1"}
			],
			"redaction_policy": "phone,email",
			"rep_speaker": "spk_0"
		}`

		// Act
		doc, err := Parse(strings.NewReader(input))

		// Assert
		require.NoError(t, err)
		assert.Len(t, doc.Words, 2)
		assert.Equal(t, "phone,email", doc.RedactionPolicy)
		assert.Equal(t, "spk_0", doc.RepSpeaker)
	})

	t.Run("should return error for malformed JSON", func(t *testing.T) {
		// Act
		doc, err := Parse(strings.NewReader("{not json"))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, doc)
		assert.Contains(t, err.Error(), "failed to decode transcript document")
	})

	t.Run("should accept an empty document", func(t *testing.T) {
		// Act
		doc, err := Parse(strings.NewReader(`{}`))

		// Assert
		require.NoError(t, err)
		assert.Empty(t, doc.Words)
		assert.NoError(t, doc.Validate())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("should load a transcript document from disk", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "transcript.json")
		content := `{"words":[{"text":"hi","start_seconds":0,"end_seconds":0.3}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		// Act
		doc, err := LoadFromFile(path)

		// Assert
		require.NoError(t, err)
		assert.Len(t, doc.Words, 1)
	})

	t.Run("should return error for missing file", func(t *testing.T) {
		// Act
		doc, err := LoadFromFile("/nonexistent/transcript.json")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, doc)
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Run("should accept ordered words", func(t *testing.T) {
		// Arrange
		doc := &Document{Words: []Word{
			{Text: "a", StartSeconds: 0, EndSeconds: 1},
			{Text: "b", StartSeconds: 1, EndSeconds: 2},
		}}

		// Act & Assert
		assert.NoError(t, doc.Validate())
	})

	t.Run("should reject out-of-order words", func(t *testing.T) {
		// Arrange
		doc := &Document{Words: []Word{
			{Text: "a", StartSeconds: 5, EndSeconds: 6},
			{Text: "b", StartSeconds: 1, EndSeconds: 2},
		}}

		// Act
		err := doc.Validate()

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of order")
	})

	t.Run("should reject invalid words", func(t *testing.T) {
		// Arrange
		doc := &Document{Words: []Word{
			{Text: "", StartSeconds: 0, EndSeconds: 1},
		}}

		// Act
		err := doc.Validate()

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "word 0 invalid")
	})
}
