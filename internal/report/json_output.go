package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"doorinsights/internal/pipeline"
)

// JSONOutput writes conversation analysis records as JSON lines to a writer
type JSONOutput struct {
	writer io.Writer
	logger *zap.Logger
}

// NewJSONOutput creates a new JSONOutput instance
func NewJSONOutput(writer io.Writer, logger *zap.Logger) *JSONOutput {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONOutput{
		writer: writer,
		logger: logger,
	}
}

// OutputRecord writes one conversation record as a JSON line
func (jo *JSONOutput) OutputRecord(record pipeline.ConversationRecord) error {
	// Validate record before output
	if err := record.Validate(); err != nil {
		jo.logger.Error("invalid record", zap.Error(err))
		return fmt.Errorf("invalid record: %w", err)
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		jo.logger.Error("failed to marshal record to JSON", zap.Error(err))
		return fmt.Errorf("failed to marshal record to JSON: %w", err)
	}

	if _, err := fmt.Fprintf(jo.writer, "%s\n", jsonBytes); err != nil {
		jo.logger.Error("failed to write JSON output", zap.Error(err))
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	jo.logger.Debug("output JSON record",
		zap.String("analysis_id", record.AnalysisID),
		zap.Int("ordinal", record.Ordinal),
		zap.String("category", string(record.Category)))

	return nil
}

// OutputAll writes every record in order
func (jo *JSONOutput) OutputAll(records []pipeline.ConversationRecord) error {
	for _, record := range records {
		if err := jo.OutputRecord(record); err != nil {
			return err
		}
	}
	return nil
}
