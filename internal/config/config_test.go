package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration(t *testing.T) {
	t.Run("should provide default values", func(t *testing.T) {
		// Arrange & Act
		config := NewConfiguration()

		// Assert
		assert.Equal(t, "", config.GetRepSpeaker())
		assert.Equal(t, "all", config.GetRedactionPolicy())
		assert.Equal(t, 20.0, config.GetMinDurationSeconds())
		assert.Equal(t, 3.0, config.GetSmallGapSeconds())
		assert.Equal(t, 30.0, config.GetLargeGapSeconds())
		assert.Equal(t, 30.0, config.GetSilenceGapSeconds())
		assert.Equal(t, "", config.GetGatewayURL())
		assert.Equal(t, "gpt-4o-mini", config.GetGatewayModel())
		assert.Equal(t, 15*time.Second, config.GetGatewayTimeout())
		assert.False(t, config.GetUseMockExtractor())
		assert.False(t, config.GetKeepAllSegments())
		assert.Equal(t, "analyses.jsonl", config.GetRecordsPath())
		assert.Equal(t, "", config.GetReportPath())
	})
}

func TestNewConfigurationFromFile(t *testing.T) {
	t.Run("should load settings from a YAML file", func(t *testing.T) {
		// Arrange
		configContent := `
transcript:
  rep_speaker: "spk_0"
  redaction_policy: "email,phone"
segmenter:
  min_duration_seconds: 10.0
  large_gap_seconds: 45.0
classifier:
  gateway_url: "https://gateway.example.com/v1/chat/completions"
  api_key: "file-key"
  timeout_seconds: 30
pipeline:
  keep_all_segments: true
output:
  records_path: "out/records.jsonl"
  report_path: "out/summary.xlsx"
`
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0o644))

		// Act
		config, err := NewConfigurationFromFile(configFile)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "spk_0", config.GetRepSpeaker())
		assert.Equal(t, "email,phone", config.GetRedactionPolicy())
		assert.Equal(t, 10.0, config.GetMinDurationSeconds())
		assert.Equal(t, 45.0, config.GetLargeGapSeconds())
		assert.Equal(t, "https://gateway.example.com/v1/chat/completions", config.GetGatewayURL())
		assert.Equal(t, "file-key", config.GetGatewayAPIKey())
		assert.Equal(t, 30*time.Second, config.GetGatewayTimeout())
		assert.True(t, config.GetKeepAllSegments())
		assert.Equal(t, "out/records.jsonl", config.GetRecordsPath())
		assert.Equal(t, "out/summary.xlsx", config.GetReportPath())
	})

	t.Run("should keep defaults for settings the file omits", func(t *testing.T) {
		// Arrange
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("transcript:\n  rep_speaker: \"spk_0\"\n"), 0o644))

		// Act
		config, err := NewConfigurationFromFile(configFile)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "spk_0", config.GetRepSpeaker())
		assert.Equal(t, 20.0, config.GetMinDurationSeconds())
		assert.Equal(t, "all", config.GetRedactionPolicy())
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		// Act
		config, err := NewConfigurationFromFile("/nonexistent/config.yaml")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestNewConfigurationFromEnv(t *testing.T) {
	t.Run("should read settings from environment variables", func(t *testing.T) {
		// Arrange
		t.Setenv("REP_SPEAKER", "spk_7")
		t.Setenv("REDACTION_POLICY", "ssn")
		t.Setenv("EXTRACTOR_GATEWAY_URL", "https://env.example.com")
		t.Setenv("EXTRACTOR_API_KEY", "env-key")
		t.Setenv("USE_MOCK_EXTRACTOR", "true")
		t.Setenv("RECORDS_PATH", "env-records.jsonl")

		// Act
		config, err := NewConfigurationFromEnv()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "spk_7", config.GetRepSpeaker())
		assert.Equal(t, "ssn", config.GetRedactionPolicy())
		assert.Equal(t, "https://env.example.com", config.GetGatewayURL())
		assert.Equal(t, "env-key", config.GetGatewayAPIKey())
		assert.True(t, config.GetUseMockExtractor())
		assert.Equal(t, "env-records.jsonl", config.GetRecordsPath())
	})

	t.Run("should fall back to defaults when environment is empty", func(t *testing.T) {
		// Act
		config, err := NewConfigurationFromEnv()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "all", config.GetRedactionPolicy())
		assert.Equal(t, "gpt-4o-mini", config.GetGatewayModel())
	})
}
