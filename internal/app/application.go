package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"doorinsights/internal/classifier"
	"doorinsights/internal/config"
	"doorinsights/internal/logger"
	"doorinsights/internal/pii"
	"doorinsights/internal/pipeline"
	"doorinsights/internal/report"
	"doorinsights/internal/segmenter"
	"doorinsights/internal/transcript"
)

// Application wires the engine's components and processes one transcript
// document end to end
type Application struct {
	config    *config.Configuration
	zapLogger *zap.Logger
	pipeline  *pipeline.Pipeline
}

// NewApplication creates a new application instance with all components initialized
func NewApplication() (*Application, error) {
	// Load configuration from config file if CONFIG_PATH is set, otherwise use environment variables
	var cfg *config.Configuration
	var err error

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		cfg, err = config.NewConfigurationFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.NewConfigurationFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load config from environment: %w", err)
		}
	}

	// Create zap logger - centralized structured logging
	zapLogger := logger.NewLogger()

	return NewApplicationWithConfig(cfg, zapLogger), nil
}

// NewApplicationWithConfig creates an application instance from an explicit
// configuration and logger
func NewApplicationWithConfig(cfg *config.Configuration, zapLogger *zap.Logger) *Application {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}

	detector := pii.NewDetectorWithLogger(pii.ParsePolicy(cfg.GetRedactionPolicy()), zapLogger)

	seg := segmenter.NewSegmenterWithLogger(segmenter.Thresholds{
		MinDurationSeconds: cfg.GetMinDurationSeconds(),
		SmallGapSeconds:    cfg.GetSmallGapSeconds(),
		LargeGapSeconds:    cfg.GetLargeGapSeconds(),
		SilenceGapSeconds:  cfg.GetSilenceGapSeconds(),
	}, zapLogger)

	cls := classifier.NewClassifierWithLogger(buildExtractor(cfg, zapLogger), zapLogger)

	engine := pipeline.NewPipelineWithLogger(detector, seg, cls, cfg.GetKeepAllSegments(), zapLogger)

	return &Application{
		config:    cfg,
		zapLogger: zapLogger,
		pipeline:  engine,
	}
}

// buildExtractor selects the objection extractor implementation from config
func buildExtractor(cfg *config.Configuration, zapLogger *zap.Logger) classifier.ObjectionExtractor {
	if cfg.GetUseMockExtractor() {
		zapLogger.Info("using deterministic mock objection extractor")
		return &classifier.MockExtractor{}
	}

	return classifier.NewGatewayExtractorWithLogger(classifier.GatewayConfig{
		URL:     cfg.GetGatewayURL(),
		Model:   cfg.GetGatewayModel(),
		APIKey:  cfg.GetGatewayAPIKey(),
		Timeout: cfg.GetGatewayTimeout(),
	}, zapLogger)
}

// Run processes the transcript document at inputPath and writes the retained
// conversation records to the configured outputs
func (app *Application) Run(ctx context.Context, inputPath string) error {
	app.zapLogger.Info("starting transcript analysis",
		zap.String("input_path", inputPath),
		zap.String("redaction_policy", app.config.GetRedactionPolicy()),
		zap.String("rep_speaker", app.config.GetRepSpeaker()))

	doc, err := transcript.LoadFromFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("transcript document invalid: %w", err)
	}

	repSpeaker := doc.RepSpeaker
	if repSpeaker == "" {
		repSpeaker = app.config.GetRepSpeaker()
	}

	records, stats := app.pipeline.Process(ctx, doc.Words, repSpeaker)

	if err := app.writeRecords(records); err != nil {
		return err
	}

	if reportPath := app.config.GetReportPath(); reportPath != "" {
		writer := report.NewExcelWriter(app.zapLogger)
		if err := writer.Write(reportPath, records); err != nil {
			return fmt.Errorf("failed to write summary workbook: %w", err)
		}
	}

	app.zapLogger.Info("transcript analysis completed",
		zap.Int("word_count", stats.WordCount),
		zap.Int("retained_count", stats.RetainedCount),
		zap.Int("objection_count", stats.ObjectionCount),
		zap.Int("degraded_count", stats.DegradedCount))

	return nil
}

// writeRecords writes the JSON-lines analysis records output
func (app *Application) writeRecords(records []pipeline.ConversationRecord) error {
	recordsPath := app.config.GetRecordsPath()
	file, err := os.Create(recordsPath)
	if err != nil {
		return fmt.Errorf("failed to create records file %s: %w", recordsPath, err)
	}
	defer file.Close()

	output := report.NewJSONOutput(file, app.zapLogger)
	if err := output.OutputAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	app.zapLogger.Info("analysis records written",
		zap.String("path", recordsPath),
		zap.Int("record_count", len(records)))

	return nil
}
