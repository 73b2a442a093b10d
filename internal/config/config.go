package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Configuration provides type-safe access to application settings
type Configuration struct {
	viper *viper.Viper
}

// setDefaults applies the default value for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("transcript.rep_speaker", "")
	v.SetDefault("transcript.redaction_policy", "all")

	v.SetDefault("segmenter.min_duration_seconds", 20.0)
	v.SetDefault("segmenter.small_gap_seconds", 3.0)
	v.SetDefault("segmenter.large_gap_seconds", 30.0)
	v.SetDefault("segmenter.silence_gap_seconds", 30.0)

	v.SetDefault("classifier.gateway_url", "")
	v.SetDefault("classifier.model", "gpt-4o-mini")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.timeout_seconds", 15)
	v.SetDefault("classifier.use_mock", false)

	v.SetDefault("pipeline.keep_all_segments", false)

	v.SetDefault("output.records_path", "analyses.jsonl")
	v.SetDefault("output.report_path", "")
}

// NewConfiguration creates a new Configuration instance with default settings
func NewConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	return &Configuration{viper: v}
}

// NewConfigurationFromFile creates a Configuration instance from a config file
func NewConfigurationFromFile(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	return &Configuration{viper: v}, nil
}

// NewConfigurationFromEnv creates a Configuration instance that reads from environment variables
func NewConfigurationFromEnv() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	// Set up environment variable mapping
	v.SetEnvPrefix("DOORINSIGHTS")
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("transcript.rep_speaker", "REP_SPEAKER")
	v.BindEnv("transcript.redaction_policy", "REDACTION_POLICY")
	v.BindEnv("classifier.gateway_url", "EXTRACTOR_GATEWAY_URL")
	v.BindEnv("classifier.model", "EXTRACTOR_MODEL")
	v.BindEnv("classifier.api_key", "EXTRACTOR_API_KEY")
	v.BindEnv("classifier.use_mock", "USE_MOCK_EXTRACTOR")
	v.BindEnv("output.records_path", "RECORDS_PATH")
	v.BindEnv("output.report_path", "REPORT_PATH")

	return &Configuration{viper: v}, nil
}

// GetRepSpeaker returns the diarization label of the sales rep
func (c *Configuration) GetRepSpeaker() string {
	return c.viper.GetString("transcript.rep_speaker")
}

// GetRedactionPolicy returns the PII redaction policy value
func (c *Configuration) GetRedactionPolicy() string {
	return c.viper.GetString("transcript.redaction_policy")
}

// GetMinDurationSeconds returns the minimum retained conversation duration
func (c *Configuration) GetMinDurationSeconds() float64 {
	return c.viper.GetFloat64("segmenter.min_duration_seconds")
}

// GetSmallGapSeconds returns the new-customer-voice gap threshold
func (c *Configuration) GetSmallGapSeconds() float64 {
	return c.viper.GetFloat64("segmenter.small_gap_seconds")
}

// GetLargeGapSeconds returns the walked-to-a-new-door gap threshold
func (c *Configuration) GetLargeGapSeconds() float64 {
	return c.viper.GetFloat64("segmenter.large_gap_seconds")
}

// GetSilenceGapSeconds returns the silence-only fallback gap threshold
func (c *Configuration) GetSilenceGapSeconds() float64 {
	return c.viper.GetFloat64("segmenter.silence_gap_seconds")
}

// GetGatewayURL returns the extraction gateway endpoint
func (c *Configuration) GetGatewayURL() string {
	return c.viper.GetString("classifier.gateway_url")
}

// GetGatewayModel returns the extraction gateway model name
func (c *Configuration) GetGatewayModel() string {
	return c.viper.GetString("classifier.model")
}

// GetGatewayAPIKey returns the extraction gateway credential
func (c *Configuration) GetGatewayAPIKey() string {
	return c.viper.GetString("classifier.api_key")
}

// GetGatewayTimeout returns the per-call extraction timeout
func (c *Configuration) GetGatewayTimeout() time.Duration {
	return time.Duration(c.viper.GetInt("classifier.timeout_seconds")) * time.Second
}

// GetUseMockExtractor returns whether the deterministic offline extractor is used
func (c *Configuration) GetUseMockExtractor() bool {
	return c.viper.GetBool("classifier.use_mock")
}

// GetKeepAllSegments returns whether zero-signal conversations are persisted
func (c *Configuration) GetKeepAllSegments() bool {
	return c.viper.GetBool("pipeline.keep_all_segments")
}

// GetRecordsPath returns the JSON-lines output path
func (c *Configuration) GetRecordsPath() string {
	return c.viper.GetString("output.records_path")
}

// GetReportPath returns the optional summary workbook path
func (c *Configuration) GetReportPath() string {
	return c.viper.GetString("output.report_path")
}
