package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doorinsights/internal/classifier"
	"doorinsights/internal/pipeline"
)

func sampleRecord(ordinal int) pipeline.ConversationRecord {
	return pipeline.ConversationRecord{
		AnalysisID:        pipeline.NewRecordID(),
		Ordinal:           ordinal,
		StartSeconds:      10,
		EndSeconds:        45,
		Speakers:          []string{"spk_rep", "spk_1"},
		WordCount:         42,
		DurationSeconds:   35,
		Category:          classifier.CategoryPitch,
		ObjectionKinds:    []classifier.ObjectionKind{classifier.ObjectionSpouse},
		Objections:        []classifier.Objection{{Kind: classifier.ObjectionSpouse, Text: "ask my wife"}},
		TimedObjections:   []pipeline.TimedObjection{{Kind: classifier.ObjectionSpouse, Text: "ask my wife", TimestampSeconds: 18}},
		HasPriceMention:   true,
		PIISpanCount:      1,
		AnalysisCompleted: true,
	}
}

func TestJSONOutput_OutputRecord(t *testing.T) {
	t.Run("should write one record as a JSON line", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		output := NewJSONOutput(&buf, nil)
		record := sampleRecord(1)

		// Act
		err := output.OutputRecord(record)

		// Assert
		require.NoError(t, err)
		line := buf.String()
		assert.True(t, strings.HasSuffix(line, "\n"))

		var decoded pipeline.ConversationRecord
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		assert.Equal(t, record.AnalysisID, decoded.AnalysisID)
		assert.Equal(t, classifier.CategoryPitch, decoded.Category)
		require.Len(t, decoded.TimedObjections, 1)
		assert.Equal(t, 18.0, decoded.TimedObjections[0].TimestampSeconds)
	})

	t.Run("should reject an invalid record", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		output := NewJSONOutput(&buf, nil)
		record := sampleRecord(1)
		record.AnalysisID = ""

		// Act
		err := output.OutputRecord(record)

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid record")
		assert.Zero(t, buf.Len())
	})

	t.Run("should omit the error field for completed analyses", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		output := NewJSONOutput(&buf, nil)

		// Act
		err := output.OutputRecord(sampleRecord(1))

		// Assert
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "analysis_error")
	})
}

func TestJSONOutput_OutputAll(t *testing.T) {
	t.Run("should write every record in order", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		output := NewJSONOutput(&buf, nil)
		records := []pipeline.ConversationRecord{sampleRecord(1), sampleRecord(2), sampleRecord(3)}

		// Act
		err := output.OutputAll(records)

		// Assert
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		for i, line := range lines {
			var decoded pipeline.ConversationRecord
			require.NoError(t, json.Unmarshal([]byte(line), &decoded))
			assert.Equal(t, i+1, decoded.Ordinal)
		}
	})

	t.Run("should write nothing for an empty record list", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		output := NewJSONOutput(&buf, nil)

		// Act
		err := output.OutputAll(nil)

		// Assert
		require.NoError(t, err)
		assert.Zero(t, buf.Len())
	})
}
