package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"doorinsights/internal/pipeline"
)

const summarySheet = "Conversations"

var summaryHeader = []string{
	"Ordinal",
	"Start (s)",
	"End (s)",
	"Duration (s)",
	"Speakers",
	"Words",
	"Category",
	"Objections",
	"Price Mention",
	"PII Spans",
	"Completed",
	"Error",
}

// ExcelWriter produces a one-row-per-conversation summary workbook for
// coaching review
type ExcelWriter struct {
	logger *zap.Logger
}

// NewExcelWriter creates a new ExcelWriter
func NewExcelWriter(logger *zap.Logger) *ExcelWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExcelWriter{logger: logger}
}

// Write saves the conversation summary workbook to the given path
func (ew *ExcelWriter) Write(path string, records []pipeline.ConversationRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		kinds := make([]string, 0, len(record.ObjectionKinds))
		for _, kind := range record.ObjectionKinds {
			kinds = append(kinds, string(kind))
		}

		row := []interface{}{
			record.Ordinal,
			record.StartSeconds,
			record.EndSeconds,
			record.DurationSeconds,
			strings.Join(record.Speakers, ", "),
			record.WordCount,
			string(record.Category),
			strings.Join(kinds, ", "),
			record.HasPriceMention,
			record.PIISpanCount,
			record.AnalysisCompleted,
			record.AnalysisError,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute row cell: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record row: %w", err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		ew.logger.Debug("default sheet not removed", zap.Error(err))
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook %s: %w", path, err)
	}

	ew.logger.Info("summary workbook written",
		zap.String("path", path),
		zap.Int("record_count", len(records)))

	return nil
}
